package event

// Platform identifies the AI coding agent that produced a hook payload.
type Platform string

const (
	PlatformClaudeCode Platform = "claude_code"
	PlatformCopilotCLI Platform = "copilot_cli"
	PlatformCursor     Platform = "cursor"
	PlatformCodex      Platform = "codex"
	PlatformOpenCode   Platform = "opencode"
	PlatformAider      Platform = "aider"
	PlatformUnknown    Platform = "unknown"
)

// labels maps platform tags to the human names used in notification titles.
var labels = map[Platform]string{
	PlatformClaudeCode: "Claude Code",
	PlatformCopilotCLI: "GitHub Copilot CLI",
	PlatformCursor:     "Cursor",
	PlatformCodex:      "Codex",
	PlatformOpenCode:   "OpenCode",
	PlatformAider:      "Aider",
	PlatformUnknown:    "AI Agent",
}

// Label returns the human-readable name for the platform.
// Unrecognized platforms get the generic "AI Agent" label.
func (p Platform) Label() string {
	if l, ok := labels[p]; ok {
		return l
	}
	return "AI Agent"
}

// ParsePlatform validates a platform tag, e.g. from the
// AGENT_NOTIFY_PLATFORM override.
func ParsePlatform(s string) (Platform, bool) {
	p := Platform(s)
	_, ok := labels[p]
	return p, ok
}

// Event is the normalized, platform-agnostic hook event. It is produced
// once per invocation by Normalize and never mutated afterwards, except
// for Project which the enrichment step fills in before dispatch.
type Event struct {
	Platform Platform
	Kind     string // platform-specific event name, never empty
	Message  string // human-readable text, may be empty
	Project  string // best-effort project name, may be empty
	Workdir  string // working-directory hint from the payload, consumed by enrichment
}
