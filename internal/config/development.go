package config

import "os"

// Development reports whether the DEVELOPMENT env variable forces development
// mode. ok is false when it is not set.
func Development() (development bool, ok bool) {
	value, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false, false
	}
	return value != "0", true
}
