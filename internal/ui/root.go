package ui

import (
	"context"
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/igget/ig2mp3/internal/config"
	"github.com/igget/ig2mp3/internal/download"
	"github.com/igget/ig2mp3/internal/links"
	"github.com/igget/ig2mp3/internal/logging"
	"github.com/igget/ig2mp3/internal/model"
	"github.com/igget/ig2mp3/internal/platform"
	"github.com/igget/ig2mp3/internal/report"
)

const (
	AppID    = "com.igget.ig2mp3"
	AppTitle = "ig2mp3"

	WindowWidth  = 560
	WindowHeight = 420
)

// RootUI represents the main window
type RootUI struct {
	window   fyne.Window
	settings *config.Settings
	baseCfg  config.RunConfig

	linksEntry     *widget.Entry
	outDirEntry    *widget.Entry
	qualitySelect  *widget.Select
	thumbnailCheck *widget.Check
	convertBtn     *widget.Button
	progressBar    *widget.ProgressBar
	progressLabel  *widget.Label
}

// Run starts the GUI and blocks until the window is closed. The base
// configuration supplies everything the GUI has no widget for (retries,
// pacing, archive, cookies, rate limit). The caller must check
// platform.GUIAvailable first; a headless session cannot start a
// window.
func Run(base config.RunConfig) {
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(NewCompactTheme())

	myWindow := myApp.NewWindow(AppTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	NewRootUI(myWindow, myApp, base)

	myWindow.ShowAndRun()
}

// NewRootUI creates and wires the main window content
func NewRootUI(window fyne.Window, app fyne.App, base config.RunConfig) *RootUI {
	ui := &RootUI{
		window:   window,
		settings: config.NewSettings(app),
		baseCfg:  base,
	}
	ui.setupUI()
	return ui
}

func (ui *RootUI) setupUI() {
	ui.linksEntry = widget.NewMultiLineEntry()
	ui.linksEntry.SetPlaceHolder("Paste one or more URLs (space or newline separated)")
	ui.linksEntry.Wrapping = fyne.TextWrapBreak

	loadBtn := widget.NewButton("Load from file (links.txt)", ui.onLoadFromFile)

	ui.outDirEntry = widget.NewEntry()
	ui.outDirEntry.SetText(ui.settings.GetOutputDirectory())
	chooseBtn := widget.NewButton("Choose folder", ui.onChooseOutputDir)
	outDirRow := container.NewBorder(nil, nil, nil, chooseBtn, ui.outDirEntry)

	ui.qualitySelect = widget.NewSelect(config.QualityOptions, nil)
	ui.qualitySelect.SetSelected(ui.settings.GetQuality())

	ui.thumbnailCheck = widget.NewCheck("Embed thumbnail", nil)
	ui.thumbnailCheck.SetChecked(ui.settings.GetEmbedThumbnail())

	ui.convertBtn = widget.NewButton("Convert to MP3", ui.onConvert)
	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Hide()
	ui.progressLabel = widget.NewLabel("")

	content := container.NewVBox(
		widget.NewLabel("Links"),
		ui.linksEntry,
		loadBtn,
		widget.NewLabel("Output folder"),
		outDirRow,
		container.NewBorder(nil, nil, widget.NewLabel("MP3 quality (kbps)"), ui.thumbnailCheck, ui.qualitySelect),
		ui.convertBtn,
		ui.progressBar,
		ui.progressLabel,
	)
	ui.window.SetContent(content)
}

// onLoadFromFile fills the paste box from a chosen text file.
func (ui *RootUI) onLoadFromFile() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to read file: %w", err), ui.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		parsed, err := links.ReadFile(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		ui.linksEntry.SetText(links.JoinText(parsed))
	}, ui.window)
	fileDialog.Show()
}

// onChooseOutputDir picks the output folder.
func (ui *RootUI) onChooseOutputDir() {
	dialog.ShowFolderOpen(func(list fyne.ListableURI, err error) {
		if err != nil || list == nil {
			return
		}
		ui.outDirEntry.SetText(list.Path())
	}, ui.window)
}

// onConvert validates the paste box, persists the chosen settings and
// runs the batch off the UI thread.
func (ui *RootUI) onConvert() {
	urls := links.ParseText(ui.linksEntry.Text)
	if len(urls) == 0 {
		dialog.ShowError(fmt.Errorf("paste one or more URLs first"), ui.window)
		return
	}

	ui.settings.SetOutputDirectory(ui.outDirEntry.Text)
	ui.settings.SetQuality(ui.qualitySelect.Selected)
	ui.settings.SetEmbedThumbnail(ui.thumbnailCheck.Checked)

	cfg := ui.baseCfg
	cfg.OutputDir = ui.settings.GetOutputDirectory()
	cfg.Quality = ui.settings.GetQuality()
	cfg.EmbedThumbnail = ui.settings.GetEmbedThumbnail()
	cfg = cfg.Normalize()

	ui.convertBtn.Disable()
	ui.progressBar.SetValue(0)
	ui.progressBar.Show()
	ui.progressLabel.SetText(fmt.Sprintf("Starting %d download(s)...", len(urls)))

	go ui.runBatch(cfg, urls)
}

// runBatch executes the downloads in a goroutine; all widget updates go
// through fyne.Do.
func (ui *RootUI) runBatch(cfg config.RunConfig, urls []string) {
	log := logging.Component("ui")
	ctx := context.Background()

	finish := func(text string) {
		fyne.Do(func() {
			ui.progressLabel.SetText(text)
			ui.convertBtn.Enable()
		})
	}

	if err := download.EnsureEngine(ctx); err != nil {
		log.Error().Err(err).Msg("engine preflight failed")
		fyne.Do(func() {
			dialog.ShowError(err, ui.window)
		})
		finish("Download engine unavailable.")
		return
	}
	if err := platform.CreateDirectoryIfNotExists(cfg.OutputDir); err != nil {
		fyne.Do(func() {
			dialog.ShowError(err, ui.window)
		})
		finish("Cannot create output folder.")
		return
	}

	errorLog := report.NewErrorLog(filepath.Join(cfg.OutputDir, report.ErrorLogName))
	reportCSV := report.NewWriter(filepath.Join(cfg.OutputDir, report.CSVName))

	svc := download.NewService(cfg, download.NewYTDLPEngine(cfg), errorLog)
	svc.SetOutcomeCallback(func(index, total int, outcome model.Outcome) {
		fyne.Do(func() {
			ui.progressBar.SetValue(float64(index) / float64(total))
			ui.progressLabel.SetText(fmt.Sprintf("[%d/%d] %s: %s", index, total, outcome.Status, outcome.URL))
		})
	})

	outcomes, summary := svc.Run(ctx, urls)

	if err := reportCSV.Append(outcomes); err != nil {
		log.Warn().Err(err).Msg("failed to write report")
	}

	finish(fmt.Sprintf("Done. Success: %d  Failures: %d", summary.OK, summary.Failed))
	fyne.Do(func() {
		message := fmt.Sprintf("Success: %d\nFailures: %d\nSaved in: %s", summary.OK, summary.Failed, cfg.OutputDir)
		dialog.ShowCustomConfirm("Done", "Open folder", "Close",
			widget.NewLabel(message),
			func(open bool) {
				if open {
					if err := platform.OpenDirectoryInManager(cfg.OutputDir); err != nil {
						log.Warn().Err(err).Msg("failed to open output folder")
					}
				}
			}, ui.window)
	})
}
