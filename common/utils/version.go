package utils

// overridden at build time with -ldflags "-X github.com/truckmayhem/truckmayhem/common/utils.version=..."
var version = "dev"

func GetVersion() string {
	return version
}
