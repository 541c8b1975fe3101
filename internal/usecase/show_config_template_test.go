package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/relaunch/internal/domain"
	"github.com/runoshun/relaunch/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfigTemplate_Execute(t *testing.T) {
	tests := []struct {
		name           string
		input          usecase.ShowConfigTemplateInput
		wantContains   []string
		wantNotContain []string
	}{
		{
			name:  "default config",
			input: usecase.ShowConfigTemplateInput{Config: domain.NewDefaultConfig()},
			wantContains: []string{
				"[target]",
				`name = "OneDrive"`,
				`# terminate = "killall {name}"`,
				`level = "info"`,
			},
		},
		{
			name: "command overrides are rendered uncommented",
			input: usecase.ShowConfigTemplateInput{
				Config: &domain.Config{
					Target:   domain.TargetConfig{Name: "Dropbox"},
					Commands: domain.CommandsConfig{Terminate: "pkill -x {name}"},
				},
			},
			wantContains: []string{
				`name = "Dropbox"`,
				`terminate = "pkill -x {name}"`,
				`# launch = "open -a {name}"`,
			},
			wantNotContain: []string{
				`# terminate =`,
			},
		},
		{
			name:  "empty config falls back to defaults",
			input: usecase.ShowConfigTemplateInput{Config: &domain.Config{}},
			wantContains: []string{
				`name = "OneDrive"`,
				`level = "info"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewShowConfigTemplate()
			out, err := uc.Execute(context.Background(), tt.input)

			require.NoError(t, err)
			require.NotNil(t, out)

			for _, want := range tt.wantContains {
				assert.Contains(t, out.Template, want, "template should contain %q", want)
			}

			for _, notWant := range tt.wantNotContain {
				assert.NotContains(t, out.Template, notWant, "template should not contain %q", notWant)
			}
		})
	}

	t.Run("nil config", func(t *testing.T) {
		_, err := usecase.NewShowConfigTemplate().Execute(context.Background(), usecase.ShowConfigTemplateInput{})
		assert.ErrorIs(t, err, domain.ErrConfigNil)
	})
}
