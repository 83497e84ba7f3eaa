package ui

import (
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-dlp-gui/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	ffmpegDirEntry  *widget.Entry
	proxyURLEntry   *widget.Entry
	languageSelect  *widget.Select
	verboseCheck    *widget.Check
	playlistsCheck  *widget.Check
	languageByLabel map[string]string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:        settings,
		localization:    localization,
		window:          window,
		languageByLabel: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.ffmpegDirEntry = widget.NewEntry()
	sd.ffmpegDirEntry.SetPlaceHolder(l.GetText(KeyFFmpegAuto))
	browseBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseFFmpeg)
	ffmpegRow := container.NewBorder(nil, nil, nil, browseBtn, sd.ffmpegDirEntry)

	sd.proxyURLEntry = widget.NewEntry()
	sd.proxyURLEntry.SetPlaceHolder(config.DefaultProxyURL)

	labels := make([]string, 0)
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageByLabel[label] = code
		labels = append(labels, label)
	}
	sort.Strings(labels)
	sd.languageSelect = widget.NewSelect(labels, nil)

	sd.verboseCheck = widget.NewCheck(l.GetText(KeyVerbose), nil)
	sd.playlistsCheck = widget.NewCheck(l.GetText(KeyExpandPlaylists), nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyFFmpegDirectory)+":"),
		ffmpegRow,
		widget.NewLabel(l.GetText(KeyProxyURL)+":"),
		sd.proxyURLEntry,
		sd.playlistsCheck,
		sd.verboseCheck,
		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.ffmpegDirEntry.SetText(sd.settings.GetFFmpegDirectory())
	sd.proxyURLEntry.SetText(sd.settings.GetProxyURL())
	sd.verboseCheck.SetChecked(sd.settings.GetVerbose())
	sd.playlistsCheck.SetChecked(sd.settings.GetExpandPlaylists())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onBrowseFFmpeg handles ffmpeg directory browsing
func (sd *SettingsDialog) onBrowseFFmpeg() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.ffmpegDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// save writes the dialog values to the settings
func (sd *SettingsDialog) save() {
	// Empty means locate ffmpeg automatically
	sd.settings.SetFFmpegDirectory(strings.TrimSpace(sd.ffmpegDirEntry.Text))
	sd.settings.SetProxyURL(strings.TrimSpace(sd.proxyURLEntry.Text))
	sd.settings.SetVerbose(sd.verboseCheck.Checked)
	sd.settings.SetExpandPlaylists(sd.playlistsCheck.Checked)

	if code, ok := sd.languageByLabel[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
}
