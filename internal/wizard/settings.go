package wizard

import (
	"strings"

	"github.com/muurk/netscen/internal/scenario"
)

// SettingsController edits the run settings.
type SettingsController struct {
	store DocumentStore
}

func NewSettingsController(store DocumentStore) *SettingsController {
	return &SettingsController{store: store}
}

func (c *SettingsController) Data() scenario.SettingsSection {
	return c.store.Document().Settings
}

func (c *SettingsController) SetTestCaseName(name string) {
	name = strings.TrimSpace(name)
	c.store.Update(scenario.SettingsPatch{TestCaseName: &name})
}

func (c *SettingsController) SetLogSetting(l scenario.LogSetting) {
	c.store.Update(scenario.SettingsPatch{LogSetting: &l})
}

func (c *SettingsController) SetSuccessSettings(s scenario.SuccessCriteria) {
	c.store.Update(scenario.SettingsPatch{SuccessSettings: &s})
}

func (c *SettingsController) Validate() bool {
	return scenario.SectionValid(c.store.Document(), scenario.SectionSettings)
}
