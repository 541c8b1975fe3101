package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/relaunch/internal/domain"
	"github.com/runoshun/relaunch/internal/testutil"
	"github.com/runoshun/relaunch/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig_Execute(t *testing.T) {
	t.Run("returns file info and effective config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.ConfigInfo = domain.ConfigInfo{
			Path:    "/home/test/.config/relaunch/config.toml",
			Content: "[target]\nname = \"Dropbox\"\n",
			Exists:  true,
		}
		loader := testutil.NewMockConfigLoader()
		loader.Config.Target.Name = "Dropbox"

		uc := usecase.NewShowConfig(manager, loader)
		out, err := uc.Execute(context.Background(), usecase.ShowConfigInput{})

		require.NoError(t, err)
		assert.True(t, out.ConfigFile.Exists)
		assert.Equal(t, "/home/test/.config/relaunch/config.toml", out.ConfigFile.Path)
		assert.Equal(t, "Dropbox", out.EffectiveConfig.Target.Name)
	})

	t.Run("returns load error", func(t *testing.T) {
		loader := testutil.NewMockConfigLoader()
		loader.Err = assert.AnError

		uc := usecase.NewShowConfig(testutil.NewMockConfigManager(), loader)
		_, err := uc.Execute(context.Background(), usecase.ShowConfigInput{})

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestShowConfigTemplate_Execute_Renders(t *testing.T) {
	t.Run("renders template", func(t *testing.T) {
		uc := usecase.NewShowConfigTemplate()
		out, err := uc.Execute(context.Background(), usecase.ShowConfigTemplateInput{
			Config: domain.NewDefaultConfig(),
		})

		require.NoError(t, err)
		assert.Equal(t, domain.RenderConfigTemplate(domain.NewDefaultConfig()), out.Template)
	})

	t.Run("rejects nil config", func(t *testing.T) {
		uc := usecase.NewShowConfigTemplate()
		_, err := uc.Execute(context.Background(), usecase.ShowConfigTemplateInput{})

		assert.ErrorIs(t, err, domain.ErrConfigNil)
	})
}
