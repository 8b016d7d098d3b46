// internals/features/school/settings/model/setting_model.go
package model

import "time"

const KeyCollegeName = "college_name"

type SettingModel struct {
	SettingsKey   string `gorm:"column:settings_key;type:varchar(60);primaryKey" json:"settings_key"`
	SettingsValue string `gorm:"column:settings_value;type:text;not null" json:"settings_value"`

	SettingsUpdatedAt time.Time `gorm:"column:settings_updated_at;not null;autoUpdateTime" json:"settings_updated_at"`
}

func (SettingModel) TableName() string { return "app_settings" }
