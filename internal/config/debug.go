package config

import (
	"os"
	"strings"
)

func IsDebug() bool {
	v := strings.ToLower(os.Getenv("TUSK_DEBUG"))
	return v == "1" || v == "true"
}
