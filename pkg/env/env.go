package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Description:
//
//	Retrieves the value of an environment variable.
//
// Parameters:
//
//	key The name of the environment variable.
//
// Returns:
//
//	The value, or an error if the variable is unset or empty.
func GetEnvironmentVariable(key string) (string, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return "", fmt.Errorf("env: variable %s is not set", key)
	}

	return value, nil
}

// Description:
//
//	Retrieves the value of an environment variable, or a fallback value
//	if the variable is unset or empty.
//
// Parameters:
//
//	key 		The name of the environment variable.
//	fallback 	The value to use if the variable is not set.
//
// Returns:
//
//	The value of the variable or the fallback.
func GetEnvironmentVariableWithFallback(key string, fallback string) string {
	value, err := GetEnvironmentVariable(key)
	if err != nil {
		return fallback
	}

	return value
}

// Description:
//
//	Loads variables from the given dotenv files into the process
//	environment. Variables that are already set are not overwritten.
//	Missing files are skipped.
//
// Parameters:
//
//	filenames The dotenv files to load. Defaults to ".env".
//
// Returns:
//
//	An error if an existing file could not be parsed.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	for _, filename := range filenames {
		err := godotenv.Load(filename)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}

		return fmt.Errorf("env: failed to load %s: %w", filename, err)
	}

	return nil
}
