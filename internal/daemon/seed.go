package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/letterly/letterly/internal/config"
	settingcontroller "github.com/letterly/letterly/internal/db/controller/setting"
	"github.com/letterly/letterly/internal/db/models"
)

// seed writes the default site settings on first start. Users are never
// seeded: the first account must come through registration, which stays
// open only while the user table is empty.
func seed(cfg *config.Config, db *gorm.DB) {
	var count int64
	db.Model(&models.SiteSetting{}).Count(&count)

	if count > 0 {
		return
	}

	defaults := []struct {
		key   string
		value string
		typ   string
	}{
		{"site_name", cfg.Title, models.SettingTypeText},
		{"maintenance_mode", "false", models.SettingTypeBoolean},
	}

	for _, d := range defaults {
		if _, err := settingcontroller.Set(db, d.key, d.value, d.typ); err != nil {
			log.Error().Err(err).Str("key", d.key).Msg("failed to seed setting")
		}
	}
}
