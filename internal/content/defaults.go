package content

import (
	_ "embed"
)

//go:embed defaults/missions.yaml
var defaultMissionsYAML []byte

//go:embed defaults/achievements.yaml
var defaultAchievementsYAML []byte
