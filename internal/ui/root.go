package ui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"net/url"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/names72/internal/catalog"
	"github.com/ytget/names72/internal/config"
	"github.com/ytget/names72/internal/model"
	"github.com/ytget/names72/internal/narration"
	"github.com/ytget/names72/internal/platform"
	"github.com/ytget/names72/internal/player"
	"github.com/ytget/names72/internal/review"
)

// Notification constants
const (
	NotificationAutoHide = 4 * time.Second
)

// PrintFunc sends the chart image at path to a printer
type PrintFunc func(ctx context.Context, path string) error

// Services groups the collaborators of the root screen. Narrator may be
// nil when no audio output is available; Print defaults to
// platform.PrintImage.
type Services struct {
	Player   player.Sequencer
	Catalog  *catalog.Catalog
	Narrator narration.Narrator
	Settings *config.Settings
	Print    PrintFunc

	// Review configures the rating prompt policy when it is enabled in
	// the settings
	Review review.Options
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	player       player.Sequencer
	catalog      *catalog.Catalog
	narrator     narration.Narrator
	settings     *config.Settings
	printChart   PrintFunc
	review       *review.Policy
	localization *Localization

	content fyne.CanvasObject

	nameView     *NameView
	counter      *canvas.Text
	meaningLabel *widget.Label
	pausedPanel  *fyne.Container
	controls     *fyne.Container

	leftBtn      *HoldButton
	rightBtn     *HoldButton
	narrationBtn *widget.Button
	detailsBtn   *widget.Button
	aboutBtn     *widget.Button
	restartBtn   *widget.Button
	playPauseBtn *widget.Button
	loopBtn      *widget.Button
	printBtn     *widget.Button
	speedSlider  *widget.Slider
	speedLabel   *widget.Label

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationTimer     *time.Timer

	// Rendering state, touched on the Fyne thread only
	state      model.PlayerState
	lastCycle  int
	flashCount int
	syncing    bool

	closeOnce sync.Once
}

// NewRootUI creates and initializes the main UI. The content is not shown
// until Show is called.
func NewRootUI(window fyne.Window, app fyne.App, svc Services) *RootUI {
	settings := svc.Settings
	if settings == nil {
		settings = config.NewSettings(nil)
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		player:       svc.Player,
		catalog:      svc.Catalog,
		narrator:     svc.Narrator,
		settings:     settings,
		printChart:   svc.Print,
		localization: localization,
	}
	if ui.printChart == nil {
		ui.printChart = platform.PrintImage
	}
	if settings.GetReviewEnabled() {
		ui.review = review.NewPolicy(svc.Review, ui.ShowReviewPrompt)
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	ui.player.SetUpdateCallback(ui.onPlayerUpdate)
	ui.player.SetCompletionCallback(ui.onSequenceComplete)
	ui.render(ui.player.Snapshot())

	log.Printf("RootUI initialized with narration: %v, catalog records: %d", ui.narrator != nil, ui.catalog.Len())
	return ui
}

// Content returns the main screen
func (ui *RootUI) Content() fyne.CanvasObject {
	return ui.content
}

// Show replaces the window content with the main screen and starts the
// review policy. A positive splash shows the splash screen first.
func (ui *RootUI) Show(splash time.Duration) {
	ready := func() {
		ui.window.SetContent(ui.content)
		ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)
		if ui.review != nil {
			ui.review.Start()
		}
	}
	if splash <= 0 {
		ready()
		return
	}
	ShowSplash(ui.window, ui.localization, splash, ready)
}

// BindLifecycle pauses the player when the app leaves the foreground and
// resumes it when it comes back
func (ui *RootUI) BindLifecycle(app fyne.App) {
	lc := app.Lifecycle()
	lc.SetOnExitedForeground(func() {
		ui.player.EnterBackground()
		ui.stopNarration()
	})
	lc.SetOnEnteredForeground(ui.player.EnterForeground)
	lc.SetOnStopped(ui.Close)
}

// Close stops background work owned by the screen
func (ui *RootUI) Close() {
	ui.closeOnce.Do(func() {
		if ui.review != nil {
			ui.review.Stop()
		}
		ui.stopNarration()
		if ui.notificationTimer != nil {
			ui.notificationTimer.Stop()
		}
	})
}

func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.nameView = NewNameView(model.FirstPosition, ui.player.TapPrimary)

	ui.counter = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	ui.counter.TextSize = CounterTextSize
	ui.counter.Alignment = fyne.TextAlignCenter

	ui.meaningLabel = widget.NewLabel("")
	ui.meaningLabel.Alignment = fyne.TextAlignCenter
	ui.meaningLabel.Wrapping = fyne.TextWrapWord

	// Navigation row shown while paused
	ui.leftBtn = NewHoldButton(IconLeft, ui.player.NavigateLeft, func(pressed bool) {
		ui.onArrowHold(model.DirectionLeft, pressed)
	})
	ui.rightBtn = NewHoldButton(IconRight, ui.player.NavigateRight, func(pressed bool) {
		ui.onArrowHold(model.DirectionRight, pressed)
	})
	ui.narrationBtn = widget.NewButton(IconSpeaker, ui.onNarrationClick)
	ui.narrationBtn.Importance = widget.HighImportance
	ui.detailsBtn = widget.NewButton(IconDetails, ui.onShowDetails)
	ui.detailsBtn.Importance = widget.LowImportance
	ui.aboutBtn = widget.NewButton(IconInfo, ui.onShowAbout)
	ui.aboutBtn.Importance = widget.LowImportance

	arrows := container.NewHBox(layout.NewSpacer(), touchTarget(ui.leftBtn), touchTarget(ui.narrationBtn), touchTarget(ui.rightBtn), layout.NewSpacer())
	meaningWidth := canvas.NewRectangle(color.Transparent)
	meaningWidth.SetMinSize(fyne.NewSize(MeaningMinWidth, 0))
	infoRow := container.NewBorder(nil, nil, ui.detailsBtn, ui.aboutBtn, container.NewStack(meaningWidth, ui.meaningLabel))
	ui.pausedPanel = container.NewVBox(arrows, infoRow)

	// Bottom controls
	ui.restartBtn = widget.NewButton(IconRestart, ui.player.Restart)
	ui.playPauseBtn = widget.NewButton(IconPlay, ui.player.TapPrimary)
	ui.playPauseBtn.Importance = widget.HighImportance
	ui.loopBtn = widget.NewButton(IconLoop, ui.player.ToggleLoop)
	ui.printBtn = widget.NewButton(IconPrint, ui.onPrintClick)
	ui.printBtn.Importance = widget.LowImportance

	ui.speedLabel = widget.NewLabel("")
	ui.speedSlider = widget.NewSlider(model.MinSpeed, model.MaxSpeed)
	ui.speedSlider.Step = 0.1
	ui.speedSlider.OnChanged = ui.onSpeedChanged

	speedRow := container.NewBorder(nil, nil, widget.NewLabel(ui.localization.GetText(KeySpeed)), ui.speedLabel, ui.speedSlider)
	buttons := container.NewHBox(layout.NewSpacer(), ui.restartBtn, ui.playPauseBtn, ui.loopBtn, ui.printBtn, layout.NewSpacer())
	ui.controls = container.NewVBox(speedRow, buttons)

	// Notification panel under the controls (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignCenter
	ui.notificationContainer = container.NewPadded(ui.notificationLabel)
	ui.notificationContainer.Hide()

	top := container.NewVBox(ui.counter, ui.pausedPanel)
	bottom := container.NewVBox(ui.controls, ui.notificationContainer)

	ui.content = container.NewBorder(top, bottom, nil, nil, ui.nameView)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	printItem := fyne.NewMenuItem(ui.localization.GetText(KeyPrintChart), ui.onPrintClick)
	aboutItem := fyne.NewMenuItem(ui.localization.GetText(KeyAbout), ui.onShowAbout)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), printItem, aboutItem),
		languageMenu,
	))
}

// onLanguageChange handles language change for the running session
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()
}

// onPlayerUpdate receives snapshots from the player goroutines
func (ui *RootUI) onPlayerUpdate(state model.PlayerState) {
	fyne.Do(func() {
		ui.render(state)
	})
}

// render applies a snapshot to the widgets
func (ui *RootUI) render(state model.PlayerState) {
	ui.syncing = true
	defer func() { ui.syncing = false }()

	if state.Position != ui.state.Position {
		ui.stopNarration()
	}
	ui.state = state

	ui.nameView.SetPosition(state.Position)
	ui.counter.Text = model.CounterLabel(state.Position)
	ui.counter.Refresh()

	if state.Cycle != ui.lastCycle {
		if ui.lastCycle != 0 {
			ui.flashCounter()
		}
		ui.lastCycle = state.Cycle
	}

	if state.State.IsActive() {
		ui.playPauseBtn.SetText(IconPause)
	} else {
		ui.playPauseBtn.SetText(IconPlay)
	}
	if state.LoopEnabled {
		ui.loopBtn.Importance = widget.HighImportance
	} else {
		ui.loopBtn.Importance = widget.MediumImportance
	}
	ui.loopBtn.Refresh()

	ui.speedSlider.SetValue(state.Speed)
	ui.speedLabel.SetText(fmt.Sprintf(SpeedLabelFormat, state.Speed))

	if state.ShowControls() {
		ui.meaningLabel.SetText(ui.meaningFor(state.Position))
		ui.pausedPanel.Show()
		ui.controls.Show()
	} else {
		ui.pausedPanel.Hide()
		ui.controls.Hide()
	}
}

func (ui *RootUI) meaningFor(position int) string {
	rec, ok := ui.catalog.Lookup(position)
	if !ok || rec.Meaning == "" {
		return DashPlaceholder
	}
	return rec.Meaning
}

func (ui *RootUI) flashCounter() {
	ui.flashCount++
	gold := theme.Color(theme.ColorNamePrimary)
	plain := theme.Color(theme.ColorNameForeground)
	canvas.NewColorRGBAAnimation(gold, plain, FlashDuration, func(c color.Color) {
		ui.counter.Color = c
		ui.counter.Refresh()
	}).Start()
}

func (ui *RootUI) onSequenceComplete(sessionID string) {
	log.Printf("Sequence %s completed", sessionID)
	if ui.review != nil {
		ui.review.Record(review.TriggerFirstCompletion)
	}
	fyne.Do(func() {
		ui.showNotification(ui.localization.GetText(KeySequenceComplete))
	})
}

func (ui *RootUI) onSpeedChanged(value float64) {
	if ui.syncing {
		return
	}
	ui.player.SetSpeed(value)
}

func (ui *RootUI) onArrowHold(dir model.Direction, pressed bool) {
	if pressed {
		ui.player.StartContinuousNavigation(dir)
		return
	}
	ui.player.StopContinuousNavigation()
}

// onTypedKey maps the keyboard to the primary controls
func (ui *RootUI) onTypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeySpace:
		ui.player.TapPrimary()
	case fyne.KeyLeft:
		ui.player.NavigateLeft()
	case fyne.KeyRight:
		ui.player.NavigateRight()
	case fyne.KeyReturn, fyne.KeyEnter:
		ui.onNarrationClick()
	}
}

// onNarrationClick plays the clip for the current name, or stops the one
// that is playing
func (ui *RootUI) onNarrationClick() {
	if ui.narrator == nil {
		ui.showNotification(ui.localization.GetText(KeyNarrationMissing))
		return
	}
	if ui.narrator.IsPlaying() {
		ui.stopNarration()
		return
	}

	position := ui.state.Position
	ui.narrationBtn.SetText(IconStop)
	ui.narrator.Play(context.Background(), position, func(err error) {
		fyne.Do(func() {
			ui.onNarrationDone(err)
		})
	})
	if ui.review != nil {
		ui.review.Record(review.TriggerAudioUsed)
	}
}

func (ui *RootUI) onNarrationDone(err error) {
	if ui.narrator == nil || !ui.narrator.IsPlaying() {
		ui.narrationBtn.SetText(IconSpeaker)
	}
	switch {
	case err == nil, errors.Is(err, narration.ErrStopped):
	case errors.Is(err, narration.ErrClipNotFound), errors.Is(err, narration.ErrNoOutput):
		ui.showNotification(ui.localization.GetText(KeyNarrationMissing))
	default:
		log.Printf("Narration failed: %v", err)
	}
}

func (ui *RootUI) stopNarration() {
	if ui.narrator != nil && ui.narrator.IsPlaying() {
		ui.narrator.Stop()
	}
}

// onShowDetails opens the full catalog entry for the current name
func (ui *RootUI) onShowDetails() {
	if ui.review != nil {
		ui.review.Record(review.TriggerDetailsViewed)
	}

	rec, ok := ui.catalog.Lookup(ui.state.Position)
	if !ok {
		dialog.ShowInformation(model.CounterLabel(ui.state.Position), ui.localization.GetText(KeyNoDetails), ui.window)
		return
	}

	body := container.NewVBox()
	script := canvas.NewText(model.VisualOrder(rec.ScriptForm), theme.Color(theme.ColorNamePrimary))
	script.TextStyle = fyne.TextStyle{Symbol: true}
	script.TextSize = NameTextSize / 2
	script.Alignment = fyne.TextAlignCenter
	body.Add(script)

	for _, section := range rec.Sections() {
		title := widget.NewLabelWithStyle(section.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		text := widget.NewLabel(section.Content)
		text.Wrapping = fyne.TextWrapWord
		body.Add(title)
		body.Add(text)
	}

	scroll := container.NewVScroll(body)
	scroll.SetMinSize(fyne.NewSize(DetailsDialogWidth, DetailsDialogHeight))

	d := dialog.NewCustom(fmt.Sprintf("%d. %s", rec.Number, rec.GetDisplayTitle()), ui.localization.GetText(KeyClose), scroll, ui.window)
	d.Show()
}

func (ui *RootUI) onShowAbout() {
	text := widget.NewLabel(ui.localization.GetText(KeyAboutText))
	text.Wrapping = fyne.TextWrapWord
	subtitle := widget.NewLabelWithStyle(ui.localization.GetText(KeySubtitle), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	content := container.NewVBox(subtitle, text)
	wrapper := container.NewGridWrap(fyne.NewSize(DetailsDialogWidth, DetailsDialogHeight/2), content)

	dialog.NewCustom(ui.localization.GetText(KeyAppTitle), ui.localization.GetText(KeyClose), wrapper, ui.window).Show()
}

// onPrintClick sends the chart image to the printer in the background
func (ui *RootUI) onPrintClick() {
	path := ui.settings.GetChartImagePath()
	go func() {
		err := ui.printChart(context.Background(), path)
		if err == nil && ui.review != nil {
			ui.review.Record(review.TriggerPrintUsed)
		}
		fyne.Do(func() {
			if err != nil {
				log.Printf("Print failed: %v", err)
				dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyPrintFailed), err), ui.window)
				return
			}
			ui.showNotification(ui.localization.GetText(KeyPrintSent))
		})
	}()
}

// ShowReviewPrompt asks the user to rate the app. It may be called from
// any goroutine.
func (ui *RootUI) ShowReviewPrompt() {
	fyne.Do(func() {
		d := dialog.NewConfirm(
			ui.localization.GetText(KeyReviewTitle),
			ui.localization.GetText(KeyReviewMessage),
			ui.onReviewAnswer,
			ui.window,
		)
		d.SetConfirmText(ui.localization.GetText(KeyRateNow))
		d.SetDismissText(ui.localization.GetText(KeyNotNow))
		d.Show()
	})
}

func (ui *RootUI) onReviewAnswer(rate bool) {
	if !rate {
		return
	}
	storeURL := ui.settings.GetStoreURL()
	if storeURL == "" {
		return
	}
	u, err := url.Parse(storeURL)
	if err != nil {
		log.Printf("Invalid store URL %q: %v", storeURL, err)
		return
	}
	if err := ui.app.OpenURL(u); err != nil {
		log.Printf("Failed to open store page: %v", err)
	}
}

// showNotification shows a message under the controls for a few seconds
func (ui *RootUI) showNotification(message string) {
	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()

	if ui.notificationTimer != nil {
		ui.notificationTimer.Stop()
	}
	ui.notificationTimer = time.AfterFunc(NotificationAutoHide, func() {
		fyne.Do(ui.hideNotification)
	})
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	ui.notificationLabel.SetText("")
	ui.notificationContainer.Hide()
}
