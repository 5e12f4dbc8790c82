//go:build mobile

// Package mobile is the ebitenmobile binding entry point for Android
// (.aar) and iOS (.xcframework) builds.
//
// This file only compiles with -tags mobile:
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.proposal -o build/android/proposal.aar -v ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Proposal.xcframework -v ./mobile
//
// The built-in scene description is used; there is no file system to load
// one from.
package mobile

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/proposal/pkg/app"
	"github.com/decker502/proposal/pkg/config"
)

func init() {
	gameApp, err := app.NewApp(app.Config{
		Verbose: true,
		Seed:    time.Now().UnixNano(),
		Scene:   config.DefaultSceneConfig(),
	})
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy is an exported no-op so ebitenmobile recognizes the package.
func Dummy() {}
