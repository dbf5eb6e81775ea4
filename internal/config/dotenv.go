package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadDotEnv looks for a .env file in the working directory and up to
// maxDepth parents and loads the first one found. Variables already set in
// the environment win. A missing file is not an error.
func LoadDotEnv(maxDepth int) (string, error) {
	if maxDepth <= 0 {
		maxDepth = 4
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for i := 0; i <= maxDepth; i++ {
		p := filepath.Join(dir, ".env")
		if _, err := os.Stat(p); err == nil {
			return p, godotenv.Load(p)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil
}
