package content

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Catalog bundles the static content loaded at engine start.
type Catalog struct {
	Missions     []Mission
	Achievements []Achievement
}

type missionsFile struct {
	Missions []Mission `yaml:"missions"`
}

type achievementsFile struct {
	Achievements []Achievement `yaml:"achievements"`
}

// LoadMissions loads the mission catalog.
// Search order: customPath -> ~/.galaxyquest/content/missions.yaml ->
// ./content/missions.yaml -> embedded default.
func LoadMissions(customPath string) ([]Mission, error) {
	data, err := readContentFile(customPath, "missions.yaml", defaultMissionsYAML)
	if err != nil {
		return nil, err
	}

	var file missionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("content: cannot parse mission catalog: %w", err)
	}
	if len(file.Missions) == 0 {
		return nil, fmt.Errorf("content: mission catalog is empty")
	}

	seen := make(map[string]bool, len(file.Missions))
	for i := range file.Missions {
		m := &file.Missions[i]
		if m.ID == "" {
			return nil, fmt.Errorf("content: mission %d has no id", i)
		}
		if seen[m.ID] {
			return nil, fmt.Errorf("content: duplicate mission id %q", m.ID)
		}
		seen[m.ID] = true
		if !m.Difficulty.Valid() {
			return nil, fmt.Errorf("content: mission %q has unknown difficulty %q", m.ID, m.Difficulty)
		}
		m.State = MissionLocked
	}
	for i := range file.Missions {
		for _, pre := range file.Missions[i].Prerequisites {
			if !seen[pre] {
				return nil, fmt.Errorf("content: mission %q requires unknown mission %q", file.Missions[i].ID, pre)
			}
		}
	}

	return file.Missions, nil
}

// LoadAchievements loads the achievement catalog.
// Search order: customPath -> ~/.galaxyquest/content/achievements.yaml ->
// ./content/achievements.yaml -> embedded default.
func LoadAchievements(customPath string) ([]Achievement, error) {
	data, err := readContentFile(customPath, "achievements.yaml", defaultAchievementsYAML)
	if err != nil {
		return nil, err
	}

	var file achievementsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("content: cannot parse achievement catalog: %w", err)
	}
	if len(file.Achievements) == 0 {
		return nil, fmt.Errorf("content: achievement catalog is empty")
	}

	seen := make(map[string]bool, len(file.Achievements))
	for i := range file.Achievements {
		a := &file.Achievements[i]
		if a.ID == "" {
			return nil, fmt.Errorf("content: achievement %d has no id", i)
		}
		if seen[a.ID] {
			return nil, fmt.Errorf("content: duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
		a.State = AchievementLocked
	}

	return file.Achievements, nil
}

// Load loads both catalogs from their default locations.
func Load() (Catalog, error) {
	missions, err := LoadMissions("")
	if err != nil {
		return Catalog{}, err
	}
	achievements, err := LoadAchievements("")
	if err != nil {
		return Catalog{}, err
	}
	return Catalog{Missions: missions, Achievements: achievements}, nil
}

// readContentFile resolves the catalog bytes.
// Search order: explicit path, user content dir, local content dir,
// embedded default.
func readContentFile(customPath, filename string, embedded []byte) ([]byte, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("content: cannot read %s: %w", customPath, err)
		}
		return data, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		userPath := filepath.Join(home, ".galaxyquest", "content", filename)
		if data, err := os.ReadFile(userPath); err == nil {
			return data, nil
		}
	}

	if data, err := os.ReadFile(filepath.Join("content", filename)); err == nil {
		return data, nil
	}

	return embedded, nil
}
