// Package forms builds the huh forms shared by the CLI and the TUI.
package forms

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/thrive/internal/models"
	"github.com/julianstephens/thrive/internal/validation"
)

// HabitFormModel holds the values bound to the habit form. Values is
// parallel to validation.HabitFields.
type HabitFormModel struct {
	Quality   models.SleepQuality
	Intensity models.ExerciseIntensity
	Values    []string
}

func NewHabitFormModel(h models.HabitsData) *HabitFormModel {
	fm := &HabitFormModel{
		Quality:   h.Sleep.Quality,
		Intensity: h.Exercise.Intensity,
		Values:    make([]string, len(validation.HabitFields)),
	}
	for i, f := range validation.HabitFields {
		fm.Values[i] = strconv.FormatFloat(f.Get(h), 'f', -1, 64)
	}
	return fm
}

// Habits converts the form values back into a habits snapshot.
func (fm *HabitFormModel) Habits() (models.HabitsData, error) {
	var h models.HabitsData
	h.Sleep.Quality = fm.Quality
	h.Exercise.Intensity = fm.Intensity
	for i, f := range validation.HabitFields {
		v, err := parseField(f, fm.Values[i])
		if err != nil {
			return h, err
		}
		f.Set(&h, v)
	}
	return h, nil
}

func parseField(f validation.Field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", strings.ToLower(f.Label))
	}
	if v < f.Min || v > f.Max {
		return 0, fmt.Errorf("%s must be between %g and %g", strings.ToLower(f.Label), f.Min, f.Max)
	}
	return v, nil
}

// NewHabitForm creates the habit entry form, one page per habit area
func NewHabitForm(fm *HabitFormModel) *huh.Form {
	groups := map[string][]huh.Field{
		"sleep": {
			huh.NewSelect[models.SleepQuality]().
				Title("Sleep quality").
				Options(huh.NewOptions(models.SleepQualities...)...).
				Value(&fm.Quality),
		},
		"exercise": {
			huh.NewSelect[models.ExerciseIntensity]().
				Title("Workout intensity").
				Options(huh.NewOptions(models.ExerciseIntensities...)...).
				Value(&fm.Intensity),
		},
	}
	var order []string
	for i, f := range validation.HabitFields {
		area := strings.SplitN(f.Key, ".", 2)[0]
		if !slices.Contains(order, area) {
			order = append(order, area)
		}
		f := f
		groups[area] = append(groups[area], huh.NewInput().
			Title(fmt.Sprintf("%s (%s)", f.Label, f.Unit)).
			Description(fmt.Sprintf("%g-%g", f.Min, f.Max)).
			Value(&fm.Values[i]).
			Validate(func(s string) error {
				_, err := parseField(f, s)
				return err
			}))
	}

	pages := make([]*huh.Group, 0, len(order))
	for _, area := range order {
		pages = append(pages, huh.NewGroup(groups[area]...).Title(areaTitle(area)))
	}
	return huh.NewForm(pages...).WithTheme(huh.ThemeDracula())
}

func areaTitle(area string) string {
	switch area {
	case "mental_health":
		return "Mental Health"
	default:
		return strings.ToUpper(area[:1]) + area[1:]
	}
}
