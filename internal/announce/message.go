package announce

import (
	"path/filepath"
	"strings"

	"github.com/herald-hooks/herald/internal/config"
)

// defaultMessages are the per-hook announcement templates. Settings may
// override any of them; {hook}, {agent}, and {project} are the only
// placeholders.
var defaultMessages = map[string]string{
	"stop":          "{agent} finished in {project}",
	"subagent-stop": "{agent} subtask complete",
	"notification":  "{agent} needs your attention",
	"session-start": "Session started in {project}",
	"session-end":   "Session ended in {project}",
	"pre-compact":   "Compacting context in {project}",
}

// Message renders the announcement template for hook. Unknown hooks fall
// back to a generic line so a new lifecycle event never produces silence.
func Message(s *config.Settings, hook, agent, project string) string {
	template := defaultMessages[hook]
	if custom, ok := s.Messages[hook]; ok && strings.TrimSpace(custom) != "" {
		template = custom
	}
	if template == "" {
		template = "{hook} event in {project}"
	}
	if agent == "" {
		agent = "Agent"
	}
	if project == "" {
		project = "your project"
	}

	out := strings.ReplaceAll(template, "{hook}", hook)
	out = strings.ReplaceAll(out, "{agent}", agent)
	out = strings.ReplaceAll(out, "{project}", project)
	return out
}

// ProjectName derives a speakable project name from a working directory.
func ProjectName(cwd string) string {
	if cwd == "" {
		return ""
	}
	return filepath.Base(filepath.Clean(cwd))
}
