package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/names72/internal/bootstrap"
	"github.com/ytget/names72/internal/config"
	"github.com/ytget/names72/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.names72"
	AppName = "72 Names of God"

	WindowWidth  = 480
	WindowHeight = 800
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)

	ctx := context.Background()
	services, err := bootstrap.Setup(ctx, bootstrap.Options{ConfigPath: config.ConfigFilePath(myApp)})
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer func() {
		if err := services.Close(ctx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	myApp.Settings().SetTheme(ui.NewMeditationTheme(services.Settings.GetHebrewFontPath()))
	if icon, err := ui.LoadIconResource(services.Settings.GetResourceDir()); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	root := ui.NewRootUI(myWindow, myApp, ui.Services{
		Player:   services.Player,
		Catalog:  services.Catalog,
		Narrator: services.Narrator,
		Settings: services.Settings,
	})
	root.BindLifecycle(myApp)
	root.Show(ui.SplashDuration)

	myWindow.ShowAndRun()
	root.Close()
}
