//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"

	"github.com/sevigo/snippet-warden/internal/app"
)

func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	wire.Build(AppSet)
	return &app.App{}, nil, nil
}

func InitializeCLIApp(ctx context.Context) (*app.App, func(), error) {
	wire.Build(CLISet)
	return &app.App{}, nil, nil
}
