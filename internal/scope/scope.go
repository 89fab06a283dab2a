// Package scope provides the scope-of-work text inserted into generated documents.
package scope

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/nurpe/cleaning-estimator/internal/model"
)

//go:embed templates.yaml
var templatesYAML []byte

type template struct {
	Title string   `yaml:"title"`
	Intro string   `yaml:"intro"`
	Tasks []string `yaml:"tasks"`
}

var (
	loadOnce  sync.Once
	templates map[model.ProjectType]template
	loadErr   error
)

func load() (map[model.ProjectType]template, error) {
	loadOnce.Do(func() {
		var raw map[string]template
		if err := yaml.Unmarshal(templatesYAML, &raw); err != nil {
			loadErr = fmt.Errorf("parse scope templates: %w", err)
			return
		}
		templates = make(map[model.ProjectType]template, len(raw))
		for key, tpl := range raw {
			templates[model.ProjectType(key)] = tpl
		}
		if _, ok := templates[model.ProjectTypeOffice]; !ok {
			loadErr = fmt.Errorf("scope templates: missing %q template", model.ProjectTypeOffice)
		}
	})
	return templates, loadErr
}

// ForProject returns the template for the project's type with add-on tasks
// appended. Unknown types fall back to the office template.
func ForProject(p model.ProjectDescription) (model.ScopeOfWork, error) {
	all, err := load()
	if err != nil {
		return model.ScopeOfWork{}, err
	}

	base, ok := all[p.ProjectType]
	if !ok {
		base = all[model.ProjectTypeOffice]
	}

	tpl := model.ScopeOfWork{
		Title: base.Title,
		Intro: base.Intro,
		Tasks: append([]string(nil), base.Tasks...),
	}
	tpl.Tasks = append(tpl.Tasks, stageTasks(p.CleaningType)...)
	if p.HasVCTFlooring {
		tpl.Tasks = append(tpl.Tasks, "Strip, seal and apply finish coats to VCT flooring")
	}
	if p.NeedsPressureWashing {
		tpl.Tasks = append(tpl.Tasks, "Pressure wash exterior walkways, entries and hardscape")
	}
	if p.NeedsWindowCleaning && p.WindowCount > 0 {
		tpl.Tasks = append(tpl.Tasks, fmt.Sprintf("Clean %d windows inside and out, including frames and sills", p.WindowCount))
	}
	return tpl, nil
}

func stageTasks(stage model.CleaningType) []string {
	switch stage {
	case model.CleaningTypeRough:
		return []string{"Rough clean during construction: debris removal and bulk dust"}
	case model.CleaningTypeTouchUp:
		return []string{"Touch-up clean before owner walkthrough and punch list sign-off"}
	case model.CleaningTypeComplete:
		return []string{
			"Rough clean during construction: debris removal and bulk dust",
			"Touch-up clean before owner walkthrough and punch list sign-off",
		}
	}
	return nil
}
