package game

import (
	"image/color"

	"github.com/ncruces/zenity"
)

// Dialogs are the native pickers the panel opens. A canceled dialog returns
// zenity.ErrCanceled.
type Dialogs interface {
	PickColor(title string, initial color.NRGBA) (color.NRGBA, error)
	OpenFile(title string) (string, error)
	SaveFile(title string) (string, error)
}

var presetFilters = zenity.FileFilters{{
	Name:     "Tree presets",
	Patterns: []string{"*.yaml", "*.yml"},
}}

// NativeDialogs shows zenity dialogs.
type NativeDialogs struct{}

func (NativeDialogs) PickColor(title string, initial color.NRGBA) (color.NRGBA, error) {
	c, err := zenity.SelectColor(
		zenity.Title(title),
		zenity.Color(initial),
		zenity.ShowPalette(),
	)
	if err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA), nil
}

func (NativeDialogs) OpenFile(title string) (string, error) {
	return zenity.SelectFile(zenity.Title(title), presetFilters)
}

func (NativeDialogs) SaveFile(title string) (string, error) {
	return zenity.SelectFileSave(
		zenity.Title(title),
		zenity.ConfirmOverwrite(),
		zenity.Filename("tree.yaml"),
		presetFilters,
	)
}
