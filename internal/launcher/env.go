package launcher

import (
	"strings"

	cn "github.com/LerianStudio/license-gate/constant"
)

// HandshakeEnv returns base with both handshake variables set to secret.
// Existing handshake entries are replaced.
func HandshakeEnv(base []string, secret string) []string {
	env := make([]string, 0, len(base)+2)

	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if strings.EqualFold(key, cn.HandshakeEnvPrimary) || strings.EqualFold(key, cn.HandshakeEnvAlias) {
			continue
		}

		env = append(env, kv)
	}

	return append(env,
		cn.HandshakeEnvPrimary+"="+secret,
		cn.HandshakeEnvAlias+"="+secret,
	)
}

// HandshakeArgs returns the command line carrying secret.
func HandshakeArgs(secret string) []string {
	return []string{cn.HandshakeFlag + "=" + secret}
}

// BaseName returns the last element of path, accepting both separators so a
// Windows path is handled on any OS.
func BaseName(path string) string {
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		return path[i+1:]
	}

	return path
}
