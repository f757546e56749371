// Package configops edits the JSON config file by dotted key path, the way
// `discordbuttons config get|set` exposes it.
package configops

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"discordbuttons/pkg/config"
)

const redacted = "********"

// keyAliases maps shorthand segments to the names used in the file.
var keyAliases = map[string]string{
	"enable": "enabled",
	"token":  "bot_token",
	"app_id": "application_id",
}

// LoadAsMap reads the config file as a generic map. A missing file yields the
// defaults so that set can create it.
func LoadAsMap(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		data, err = json.Marshal(config.DefaultConfig())
		if err != nil {
			return nil, err
		}
	}

	var cfgMap map[string]interface{}
	if err := json.Unmarshal(data, &cfgMap); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfgMap, nil
}

func NormalizePath(path string) string {
	p := strings.Trim(strings.TrimSpace(path), ".")
	parts := strings.Split(p, ".")
	for i, part := range parts {
		if alias, ok := keyAliases[part]; ok {
			parts[i] = alias
		}
	}
	return strings.Join(parts, ".")
}

// ParseValue turns a command line word into the JSON value it most likely
// means. Quoted input always stays a string.
func ParseValue(raw string) interface{} {
	v := strings.TrimSpace(raw)
	if len(v) >= 2 && ((v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'')) {
		return v[1 : len(v)-1]
	}
	switch strings.ToLower(v) {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return i
	}
	if strings.Contains(v, ".") {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return v
}

func SetValue(root map[string]interface{}, path string, value interface{}) error {
	parts, err := splitPath(path)
	if err != nil {
		return err
	}
	cur := root
	for _, key := range parts[:len(parts)-1] {
		next, ok := cur[key]
		if !ok {
			child := map[string]interface{}{}
			cur[key] = child
			cur = child
			continue
		}
		child, ok := next.(map[string]interface{})
		if !ok {
			return fmt.Errorf("path segment is not an object: %s", key)
		}
		cur = child
	}
	cur[parts[len(parts)-1]] = value
	return nil
}

func GetValue(root map[string]interface{}, path string) (interface{}, bool) {
	parts, err := splitPath(path)
	if err != nil {
		return nil, false
	}
	var cur interface{} = root
	for _, key := range parts {
		obj, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		if cur, ok = obj[key]; !ok {
			return nil, false
		}
	}
	return cur, true
}

func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("path is empty")
	}
	parts := strings.Split(path, ".")
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("invalid path: %s", path)
		}
	}
	return parts, nil
}

// Secret reports whether the value at path should not be echoed back.
func Secret(path string) bool {
	return strings.HasSuffix(path, "bot_token")
}

// Display renders a value for the terminal, hiding secrets.
func Display(path string, value interface{}) string {
	if Secret(path) {
		if s, ok := value.(string); ok && s != "" {
			return redacted
		}
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(data)
}

// Apply sets path to the parsed raw value and writes the file back, keeping
// the previous version next to it. The result must still decode as a Config,
// so typos in key names or wrong value types never reach disk.
func Apply(configPath, path, raw string) (interface{}, string, error) {
	cfgMap, err := LoadAsMap(configPath)
	if err != nil {
		return nil, "", err
	}
	value := ParseValue(raw)
	data, err := encodeWith(cfgMap, path, value)
	if err != nil {
		if _, isString := value.(string); isString {
			return nil, "", err
		}
		// Snowflake ids look like numbers but are strings in the file.
		value = strings.TrimSpace(raw)
		if data, err = encodeWith(cfgMap, path, value); err != nil {
			return nil, "", err
		}
	}

	backupPath, err := WriteAtomicWithBackup(configPath, data)
	if err != nil {
		return nil, "", err
	}
	return value, backupPath, nil
}

func encodeWith(cfgMap map[string]interface{}, path string, value interface{}) ([]byte, error) {
	if err := SetValue(cfgMap, path, value); err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(cfgMap, "", "  ")
	if err != nil {
		return nil, err
	}
	if _, err := config.DecodeConfig(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// WriteAtomicWithBackup replaces configPath through a temp file and returns
// the backup path, or "" when there was nothing to back up.
func WriteAtomicWithBackup(configPath string, data []byte) (string, error) {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", err
	}

	backupPath := ""
	if oldData, err := os.ReadFile(configPath); err == nil {
		backupPath = configPath + ".bak"
		if err := os.WriteFile(backupPath, oldData, 0600); err != nil {
			return "", fmt.Errorf("write backup failed: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("read existing config failed: %w", err)
	}

	tmpPath := configPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return "", fmt.Errorf("write temp config failed: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("atomic replace config failed: %w", err)
	}
	return backupPath, nil
}
