package apikeys

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const apiKeysFile = ".taskplan/api_keys.json"

var (
	apiKeys     map[string]string
	apiKeysOnce sync.Once
	apiKeysMu   sync.Mutex
)

// GetAPIKey retrieves the API key for the specified provider.
// It first checks the in-memory cache, then the keys file, then environment
// variables, and finally prompts the user if interactive mode is enabled.
func GetAPIKey(provider string, interactive bool) (string, error) {
	apiKeysOnce.Do(func() {
		apiKeys = make(map[string]string)
		loadedKeys, err := loadAPIKeys()
		if err == nil {
			apiKeysMu.Lock()
			for k, v := range loadedKeys {
				apiKeys[k] = v
			}
			apiKeysMu.Unlock()
		} else {
			fmt.Printf("Warning: Could not load API keys from file: %v\n", err)
		}
	})

	apiKeysMu.Lock()
	key, ok := apiKeys[provider]
	apiKeysMu.Unlock()

	if ok && key != "" {
		return key, nil
	}

	// Check environment variable
	envVar := strings.ToUpper(provider) + "_API_KEY"
	key = os.Getenv(envVar)
	if key != "" {
		apiKeysMu.Lock()
		apiKeys[provider] = key
		apiKeysMu.Unlock()
		return key, nil
	}

	if interactive {
		key = promptForAPIKey(provider)
		if key != "" {
			apiKeysMu.Lock()
			apiKeys[provider] = key
			apiKeysMu.Unlock()
			saveAPIKeys(apiKeys)
			return key, nil
		}
	}

	return "", fmt.Errorf("API key for %s not found and not provided", provider)
}

// HasAPIKey reports whether a credential can be resolved without prompting.
// Used at startup to warn once when the key is missing.
func HasAPIKey(provider string) bool {
	key, err := GetAPIKey(provider, false)
	return err == nil && key != ""
}

// loadAPIKeys loads the API keys from a file.
func loadAPIKeys() (map[string]string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not get user home directory: %w", err)
	}
	filePath := filepath.Join(homeDir, apiKeysFile)

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("could not read API keys file: %w", err)
	}

	var keys map[string]string
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("could not unmarshal API keys: %w", err)
	}
	return keys, nil
}

// saveAPIKeys saves the API keys to a file.
func saveAPIKeys(keys map[string]string) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("could not get user home directory: %w", err)
	}
	dirPath := filepath.Join(homeDir, ".taskplan")
	filePath := filepath.Join(dirPath, "api_keys.json")

	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("could not create .taskplan directory: %w", err)
	}

	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal API keys: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return fmt.Errorf("could not write API keys file: %w", err)
	}
	return nil
}

// promptForAPIKey prompts the user for an API key on stdin.
func promptForAPIKey(provider string) string {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("Enter your %s API Key (or set %s_API_KEY environment variable): ", provider, strings.ToUpper(provider))
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
