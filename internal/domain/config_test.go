package domain

import (
	"strings"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Target.Name != DefaultTargetName {
		t.Errorf("Target.Name = %q, want %q", cfg.Target.Name, DefaultTargetName)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
	if cfg.Commands.Terminate != "" || cfg.Commands.Launch != "" {
		t.Errorf("Commands = %+v, want platform defaults (empty)", cfg.Commands)
	}
}

func TestRenderConfigTemplate_Defaults(t *testing.T) {
	out := RenderConfigTemplate(NewDefaultConfig())

	for _, want := range []string{
		"[target]",
		`name = "OneDrive"`,
		"[commands]",
		`# terminate = "killall {name}"`,
		`# launch = "open -a {name}"`,
		"[log]",
		`level = "info"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("template missing %q\n%s", want, out)
		}
	}
}

func TestRenderConfigTemplate_CustomValues(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Target.Name = "Dropbox"
	cfg.Commands.Launch = `cmd /C start "" {name}`
	cfg.Log.Level = "debug"

	out := RenderConfigTemplate(cfg)

	if !strings.Contains(out, `name = "Dropbox"`) {
		t.Errorf("template missing target name\n%s", out)
	}
	if !strings.Contains(out, `launch = "cmd /C start \"\" {name}"`) {
		t.Errorf("template missing quoted launch command\n%s", out)
	}
	if !strings.Contains(out, `# terminate = "killall {name}"`) {
		t.Errorf("terminate should stay commented out\n%s", out)
	}
	if !strings.Contains(out, `level = "debug"`) {
		t.Errorf("template missing log level\n%s", out)
	}
}

func TestRenderConfigTemplate_EmptyFieldsFallBack(t *testing.T) {
	out := RenderConfigTemplate(&Config{})

	if !strings.Contains(out, `name = "OneDrive"`) {
		t.Errorf("empty target should fall back to default\n%s", out)
	}
	if !strings.Contains(out, `level = "info"`) {
		t.Errorf("empty level should fall back to default\n%s", out)
	}
}

func TestRenderConfigTemplate_NotesProcessNameLimit(t *testing.T) {
	out := RenderConfigTemplate(NewDefaultConfig())
	if !strings.Contains(out, "first 15 bytes of a process name") {
		t.Errorf("template does not document the process name limit:\n%s", out)
	}
}
