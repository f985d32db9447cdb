package serverconfig

import (
	"github.com/ossyrian/a3cfg/internal/cfgtext"
)

var (
	optionsPath = []string{"DifficultyPresets", "CustomDifficulty", "Options"}
	customPath  = []string{"DifficultyPresets", "CustomDifficulty"}
	aiLevelPath = []string{"DifficultyPresets", "CustomAiLevel"}
)

// ArmaProfile is the content of the server profile (server.Arma3Profile).
// Options only take effect when the Custom difficulty is played.
//
// See https://community.bistudio.com/wiki/Arma_3:_Difficulty_Settings
type ArmaProfile struct {
	DefaultDifficulty string
	Options           DifficultyOptions
	AILevelPreset     int
	AISkill           *float64
	AIPrecision       *float64
}

// DifficultyOptions is the DifficultyPresets/CustomDifficulty/Options class.
type DifficultyOptions struct {
	ReducedDamage      *int
	GroupIndicators    *int
	FriendlyTags       *int
	EnemyTags          *int
	DetectedMines      *int
	Commands           *int
	Waypoints          *int
	WeaponInfo         *int
	StanceIndicator    *int
	StaminaBar         *int
	WeaponCrosshair    *int
	VisionAid          *int
	ThirdPersonView    *int
	CameraShake        *int
	ScoreTable         *int
	DeathMessages      *int
	VonID              *int
	MapContentFriendly *int
	MapContentEnemy    *int
	MapContentMines    *int
	AutoReport         *int
	MultipleSaves      *int
	TacticalPing       *int
}

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

// NewArmaProfile returns the profile the game writes on first start.
func NewArmaProfile() ArmaProfile {
	return ArmaProfile{
		DefaultDifficulty: "recruit",
		Options: DifficultyOptions{
			ReducedDamage:      intp(0),
			GroupIndicators:    intp(1),
			FriendlyTags:       intp(1),
			EnemyTags:          intp(0),
			DetectedMines:      intp(1),
			Commands:           intp(2),
			Waypoints:          intp(2),
			WeaponInfo:         intp(2),
			StanceIndicator:    intp(2),
			StaminaBar:         intp(2),
			WeaponCrosshair:    intp(1),
			VisionAid:          intp(0),
			ThirdPersonView:    intp(1),
			CameraShake:        intp(1),
			ScoreTable:         intp(1),
			DeathMessages:      intp(1),
			VonID:              intp(1),
			MapContentFriendly: intp(1),
			MapContentEnemy:    intp(1),
			MapContentMines:    intp(1),
			AutoReport:         intp(1),
			MultipleSaves:      intp(1),
			TacticalPing:       intp(3),
		},
		AILevelPreset: 2,
		AISkill:       floatp(0.5),
		AIPrecision:   floatp(0.5),
	}
}

func option(k string, field func(o *DifficultyOptions) **int) cfgtext.Field[ArmaProfile] {
	return cfgtext.OptionalInt(cfgtext.FieldDescriptor{Key: k, Path: optionsPath},
		func(p *ArmaProfile) **int { return field(&p.Options) })
}

// ProfileSchema maps ArmaProfile onto profile statements.
var ProfileSchema = cfgtext.NewSchema(
	cfgtext.String(cfgtext.FieldDescriptor{Key: "difficulty", Quoted: true, LowerCase: true},
		func(p *ArmaProfile) *string { return &p.DefaultDifficulty }),

	option("reducedDamage", func(o *DifficultyOptions) **int { return &o.ReducedDamage }),
	option("groupIndicators", func(o *DifficultyOptions) **int { return &o.GroupIndicators }),
	option("friendlyTags", func(o *DifficultyOptions) **int { return &o.FriendlyTags }),
	option("enemyTags", func(o *DifficultyOptions) **int { return &o.EnemyTags }),
	option("detectedMines", func(o *DifficultyOptions) **int { return &o.DetectedMines }),
	option("commands", func(o *DifficultyOptions) **int { return &o.Commands }),
	option("waypoints", func(o *DifficultyOptions) **int { return &o.Waypoints }),
	option("weaponInfo", func(o *DifficultyOptions) **int { return &o.WeaponInfo }),
	option("stanceIndicator", func(o *DifficultyOptions) **int { return &o.StanceIndicator }),
	option("staminaBar", func(o *DifficultyOptions) **int { return &o.StaminaBar }),
	option("weaponCrosshair", func(o *DifficultyOptions) **int { return &o.WeaponCrosshair }),
	option("visionAid", func(o *DifficultyOptions) **int { return &o.VisionAid }),
	option("thirdPersonView", func(o *DifficultyOptions) **int { return &o.ThirdPersonView }),
	option("cameraShake", func(o *DifficultyOptions) **int { return &o.CameraShake }),
	option("scoreTable", func(o *DifficultyOptions) **int { return &o.ScoreTable }),
	option("deathMessages", func(o *DifficultyOptions) **int { return &o.DeathMessages }),
	option("vonID", func(o *DifficultyOptions) **int { return &o.VonID }),
	option("mapContentFriendly", func(o *DifficultyOptions) **int { return &o.MapContentFriendly }),
	option("mapContentEnemy", func(o *DifficultyOptions) **int { return &o.MapContentEnemy }),
	option("mapContentMines", func(o *DifficultyOptions) **int { return &o.MapContentMines }),
	option("autoReport", func(o *DifficultyOptions) **int { return &o.AutoReport }),
	option("multipleSaves", func(o *DifficultyOptions) **int { return &o.MultipleSaves }),
	option("tacticalPing", func(o *DifficultyOptions) **int { return &o.TacticalPing }),

	cfgtext.Int(cfgtext.FieldDescriptor{Key: "aiLevelPreset", Path: customPath},
		func(p *ArmaProfile) *int { return &p.AILevelPreset }),
	cfgtext.OptionalFloat(cfgtext.FieldDescriptor{Key: "skillAI", Path: aiLevelPath},
		func(p *ArmaProfile) **float64 { return &p.AISkill }),
	cfgtext.OptionalFloat(cfgtext.FieldDescriptor{Key: "precisionAI", Path: aiLevelPath},
		func(p *ArmaProfile) **float64 { return &p.AIPrecision }),
).WithDefaults(NewArmaProfile)
