package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var ErrNoProfile = errors.New("no profile selected")

func ConfigRoot() string {
	// Windows
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, "supacha")
	}

	// Linux/macOS XDG
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "supacha")
	}

	// Linux/macOS default
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "supacha")
}

func ProfilesDir() string {
	return filepath.Join(ConfigRoot(), "profiles")
}

func currentLabelFile() string {
	return filepath.Join(ConfigRoot(), "current_profile")
}

func ProfilePath(label string) string {
	return filepath.Join(ProfilesDir(), label+".yaml")
}

func ensureDirs() error {
	if err := os.MkdirAll(ConfigRoot(), 0755); err != nil {
		return err
	}
	return os.MkdirAll(ProfilesDir(), 0755)
}

func CurrentProfile() (string, error) {
	if err := ensureDirs(); err != nil {
		return "", err
	}

	b, err := os.ReadFile(currentLabelFile())
	if os.IsNotExist(err) {
		return "", ErrNoProfile
	}
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(b)), nil
}

func ActiveProfilePath() (string, error) {
	label, err := CurrentProfile()
	if err != nil || label == "" {
		return "", ErrNoProfile
	}

	return ProfilePath(label), nil
}

type ProfileInfo struct {
	Label  string
	Path   string
	Active bool
}

func ListProfiles() ([]ProfileInfo, error) {
	if err := ensureDirs(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(ProfilesDir())
	if err != nil {
		return nil, err
	}

	activeLabel, _ := CurrentProfile()
	var out []ProfileInfo

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") {
			continue
		}

		label := strings.TrimSuffix(name, ".yaml")
		out = append(out, ProfileInfo{
			Label:  label,
			Path:   filepath.Join(ProfilesDir(), name),
			Active: label == activeLabel,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out, nil
}

func SwitchProfile(label string) error {
	if strings.TrimSpace(label) == "" {
		return errors.New("label cannot be empty")
	}
	if err := ensureDirs(); err != nil {
		return err
	}

	if _, err := os.Stat(ProfilePath(label)); err != nil {
		return fmt.Errorf("profile %q does not exist", label)
	}

	return os.WriteFile(currentLabelFile(), []byte(label), 0644)
}

func CreateProfile(label string) (string, error) {
	if strings.TrimSpace(label) == "" {
		return "", errors.New("label cannot be empty")
	}
	if err := ensureDirs(); err != nil {
		return "", err
	}

	path := ProfilePath(label)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("profile %q already exists", label)
	}

	if err := SaveYAML(DefaultConfig(), path); err != nil {
		return "", err
	}

	return path, nil
}

func RenameProfile(oldLabel, newLabel string) error {
	if strings.TrimSpace(newLabel) == "" {
		return errors.New("new label cannot be empty")
	}
	if err := ensureDirs(); err != nil {
		return err
	}

	oldPath := ProfilePath(oldLabel)
	newPath := ProfilePath(newLabel)

	if _, err := os.Stat(oldPath); err != nil {
		return fmt.Errorf("profile %q does not exist", oldLabel)
	}
	if _, err := os.Stat(newPath); err == nil {
		return fmt.Errorf("profile %q already exists", newLabel)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return err
	}

	active, _ := CurrentProfile()
	if active == oldLabel {
		return os.WriteFile(currentLabelFile(), []byte(newLabel), 0644)
	}

	return nil
}

func RemoveProfile(label string) error {
	if strings.TrimSpace(label) == "" {
		return errors.New("label cannot be empty")
	}
	if label == "Default" {
		return errors.New("cannot remove the Default profile")
	}
	if err := ensureDirs(); err != nil {
		return err
	}

	path := ProfilePath(label)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("profile %q does not exist", label)
	}

	active, _ := CurrentProfile()
	if active == label {
		if err := SwitchProfile("Default"); err != nil {
			return fmt.Errorf("failed switching to Default: %w", err)
		}
		fmt.Println("Fallback switched to: Default")
	}

	return os.Remove(path)
}

func InitDefaultProfile() (string, error) {
	if err := ensureDirs(); err != nil {
		return "", err
	}

	defPath := ProfilePath("Default")

	if _, err := os.Stat(defPath); err == nil {
		_ = os.WriteFile(currentLabelFile(), []byte("Default"), 0644)
		return defPath, os.ErrExist
	}

	if err := SaveYAML(DefaultConfig(), defPath); err != nil {
		return "", err
	}

	_ = os.WriteFile(currentLabelFile(), []byte("Default"), 0644)
	return defPath, nil
}
