package ui

import (
	"context"
	"errors"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-dlp-gui/internal/config"
	"github.com/ytget/yt-dlp-gui/internal/model"
	"github.com/ytget/yt-dlp-gui/internal/platform"
)

// Runner starts download runs. It is implemented by download.Worker.
type Runner interface {
	Start(ctx context.Context, opts model.Options) <-chan model.Event
	IsRunning() bool
	FFmpegDir() string
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	runner       Runner
	settings     *config.Settings
	env          config.Env
	localization *Localization
	status       model.RunStatus

	urlEntry      *widget.Entry
	mediaRadio    *widget.RadioGroup
	qualitySelect *widget.Select
	destEntry     *widget.Entry
	browseBtn     *widget.Button
	openBtn       *widget.Button
	subsCheck     *widget.Check
	proxyCheck    *widget.Check
	simulateCheck *widget.Check
	startBtn      *widget.Button
	progressBar   *widget.ProgressBar
	statusLabel   *widget.Label
	logLabel      *widget.Label
	logScroll     *container.Scroll
	logText       strings.Builder

	// media type by radio label
	mediaByLabel map[string]model.MediaType
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, runner Runner, env config.Env) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		runner:       runner,
		settings:     settings,
		env:          env,
		localization: localization,
		status:       model.RunStatusIdle,
		mediaByLabel: make(map[string]model.MediaType),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.loadChoices()
	ui.checkDependencies()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	l := ui.localization

	ui.urlEntry = widget.NewMultiLineEntry()
	ui.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURLs))
	ui.urlEntry.SetMinRowsVisible(URLEntryRows)
	ui.urlEntry.Wrapping = fyne.TextWrapBreak

	mediaLabels := make([]string, 0, len(model.MediaTypes()))
	for _, m := range model.MediaTypes() {
		label := l.MediaTypeLabel(m)
		ui.mediaByLabel[label] = m
		mediaLabels = append(mediaLabels, label)
	}
	ui.mediaRadio = widget.NewRadioGroup(mediaLabels, nil)
	ui.mediaRadio.Horizontal = true
	ui.mediaRadio.Required = true

	qualities := make([]string, 0, len(model.QualityOptions()))
	for _, q := range model.QualityOptions() {
		qualities = append(qualities, string(q))
	}
	ui.qualitySelect = widget.NewSelect(qualities, nil)

	ui.destEntry = widget.NewEntry()
	ui.destEntry.SetPlaceHolder(l.GetText(KeyDestination))
	ui.browseBtn = widget.NewButton(l.GetText(KeyBrowse), ui.onBrowse)
	ui.openBtn = widget.NewButton(IconFolder+" "+l.GetText(KeyOpenFolder), ui.onOpenFolder)
	destRow := container.NewBorder(nil, nil, nil, container.NewHBox(ui.browseBtn, ui.openBtn), ui.destEntry)

	ui.subsCheck = widget.NewCheck(l.GetText(KeySubtitles), nil)
	ui.proxyCheck = widget.NewCheck(l.GetText(KeyUseProxy), nil)
	ui.simulateCheck = widget.NewCheck(l.GetText(KeySimulate), nil)

	ui.startBtn = widget.NewButton(l.GetText(KeyStart), ui.onStartClick)
	ui.startBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel(l.StatusLabel(ui.status))

	ui.logLabel = widget.NewLabel("")
	ui.logLabel.Wrapping = fyne.TextWrapWord
	ui.logLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ui.logScroll = container.NewVScroll(ui.logLabel)

	top := container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel(l.GetText(KeyURLs)), settingsBtn),
		ui.urlEntry,
		ui.mediaRadio,
		container.NewBorder(nil, nil, widget.NewLabel(l.GetText(KeyQuality)), nil, ui.qualitySelect),
		destRow,
		container.NewHBox(ui.subsCheck, ui.proxyCheck, ui.simulateCheck),
		widget.NewLabel(l.GetText(KeyLog)),
	)
	bottom := container.NewVBox(
		container.NewBorder(nil, nil, nil, ui.statusLabel, ui.progressBar),
		ui.startBtn,
	)

	ui.window.SetContent(container.NewBorder(top, bottom, nil, nil, ui.logScroll))
	ui.window.Resize(fyne.NewSize(MinWindowWidth, MinWindowHeight))
}

// loadChoices restores the last used options
func (ui *RootUI) loadChoices() {
	ui.mediaRadio.SetSelected(ui.localization.MediaTypeLabel(ui.settings.GetMediaType()))
	ui.qualitySelect.SetSelected(string(ui.settings.GetQuality()))
	ui.destEntry.SetText(ui.settings.GetDownloadDirectory())
	ui.subsCheck.SetChecked(ui.settings.GetSubtitles())
	ui.proxyCheck.SetChecked(ui.settings.GetProxyEnabled())
}

// saveChoices stores the options of a run that is about to start
func (ui *RootUI) saveChoices(opts model.Options) {
	ui.settings.SetMediaType(opts.MediaType)
	ui.settings.SetQuality(opts.Quality)
	ui.settings.SetDownloadDirectory(opts.OutputDir)
	ui.settings.SetSubtitles(opts.Subtitles)
	ui.settings.SetProxyEnabled(opts.Proxy != "")
}

// checkDependencies logs once at startup whether ffmpeg is available
func (ui *RootUI) checkDependencies() {
	if _, ok := platform.ProbeFFmpeg(ui.runner.FFmpegDir()); !ok {
		ui.appendLog(ui.localization.GetText(KeyFFmpegMissing))
	}
}

// proxyURL returns the proxy to use, the environment taking precedence
func (ui *RootUI) proxyURL() string {
	if ui.env.Proxy != "" {
		return ui.env.Proxy
	}
	return ui.settings.GetProxyURL()
}

// collectOptions builds the run options from the widgets
func (ui *RootUI) collectOptions() (model.Options, error) {
	opts := model.Options{
		URLs:      model.ParseURLs(ui.urlEntry.Text),
		MediaType: ui.mediaByLabel[ui.mediaRadio.Selected],
		Quality:   model.Quality(ui.qualitySelect.Selected),
		OutputDir: strings.TrimSpace(ui.destEntry.Text),
		Subtitles: ui.subsCheck.Checked,
		Simulate:  ui.simulateCheck.Checked,

		// read on every run
		Verbose:         ui.settings.GetVerbose() || ui.env.Verbose,
		ExpandPlaylists: ui.settings.GetExpandPlaylists(),
	}
	if opts.Quality == "" {
		opts.Quality = config.DefaultQuality
	}
	if ui.proxyCheck.Checked {
		opts.Proxy = ui.proxyURL()
	}
	return opts, opts.Validate()
}

// validationMessage maps a validation error to a localized message
func (ui *RootUI) validationMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrNoURLs):
		return ui.localization.GetText(KeyPleaseEnterURL)
	case errors.Is(err, model.ErrNoOutputDir):
		return ui.localization.GetText(KeyPleaseChooseFolder)
	default:
		return err.Error()
	}
}

// onStartClick validates the options and starts a run
func (ui *RootUI) onStartClick() {
	if ui.status.IsActive() || ui.runner.IsRunning() {
		return
	}

	opts, err := ui.collectOptions()
	if err != nil {
		dialog.ShowInformation(ui.localization.GetText(KeyAppTitle), ui.validationMessage(err), ui.window)
		return
	}
	if err := platform.CheckWritableDir(opts.OutputDir); err != nil {
		dialog.ShowInformation(ui.localization.GetText(KeyAppTitle), ui.localization.GetText(KeyInvalidFolder)+": "+err.Error(), ui.window)
		return
	}

	ui.saveChoices(opts)
	ui.setRunning(true)

	events := ui.runner.Start(context.Background(), opts)
	go ui.consume(events)
}

// consume applies the events of a run on the UI thread, in order
func (ui *RootUI) consume(events <-chan model.Event) {
	sawDone := false
	for ev := range events {
		if ev.Kind == model.EventDone {
			sawDone = true
		}
		fyne.Do(func() { ui.applyEvent(ev) })
	}
	if !sawDone {
		log.Printf("Event channel closed without a summary")
		fyne.Do(func() {
			ui.appendLog(ui.localization.GetText(KeyDownloadInterrupted))
			ui.setRunning(false)
		})
	}
}

// applyEvent renders one worker event
func (ui *RootUI) applyEvent(ev model.Event) {
	switch ev.Kind {
	case model.EventLog:
		ui.appendLog(ev.Line)
	case model.EventProgress:
		ui.progressBar.SetValue(ev.Progress.Fraction())
	case model.EventDone:
		ui.setRunning(false)
		if ev.Summary != nil {
			ui.status = ev.Summary.Status()
			ui.statusLabel.SetText(ui.localization.StatusLabel(ui.status))
		}
	}
}

// appendLog adds a line to the log view and scrolls to it
func (ui *RootUI) appendLog(line string) {
	if ui.logText.Len() > 0 {
		ui.logText.WriteByte('\n')
	}
	ui.logText.WriteString(line)
	ui.logLabel.SetText(ui.logText.String())
	ui.logScroll.ScrollToBottom()
}

// setRunning toggles the input controls while a run is active
func (ui *RootUI) setRunning(running bool) {
	controls := []fyne.Disableable{
		ui.urlEntry, ui.mediaRadio, ui.qualitySelect, ui.destEntry, ui.browseBtn,
		ui.subsCheck, ui.proxyCheck, ui.simulateCheck, ui.startBtn,
	}
	for _, c := range controls {
		if running {
			c.Disable()
		} else {
			c.Enable()
		}
	}

	if running {
		ui.status = model.RunStatusRunning
		ui.progressBar.SetValue(0)
	} else if ui.status.IsActive() {
		ui.status = model.RunStatusIdle
	}
	ui.statusLabel.SetText(ui.localization.StatusLabel(ui.status))
}

// onBrowse lets the user pick the destination folder
func (ui *RootUI) onBrowse() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.destEntry.SetText(uri.Path())
	}, ui.window)
}

// onOpenFolder reveals the destination folder in the file manager
func (ui *RootUI) onOpenFolder() {
	dir := strings.TrimSpace(ui.destEntry.Text)
	if dir == "" {
		dialog.ShowInformation(ui.localization.GetText(KeyAppTitle), ui.localization.GetText(KeyPleaseChooseFolder), ui.window)
		return
	}
	if err := platform.OpenFolder(dir); err != nil {
		dialog.ShowInformation(ui.localization.GetText(KeyAppTitle), ui.localization.GetText(KeyErrorOpeningFolder)+": "+err.Error(), ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window).Show()
}
