package event

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// detector recognizes one platform's payload shape. Detectors are tried in
// a fixed order and the first match wins: the payload schemas overlap on
// individual keys but not on key combinations, so each detector may assume
// the keys tested by earlier ones were absent.
type detector struct {
	name  string
	match func(p map[string]any) bool
	build func(p map[string]any) Event
}

var detectors = []detector{
	{"claude_code", matchClaudeCode, buildClaudeCode},
	{"copilot_session_end", matchCopilotSessionEnd, buildCopilotSessionEnd},
	{"copilot_post_tool_use", matchCopilotPostToolUse, buildCopilotPostToolUse},
	{"copilot_session_start", matchCopilotSessionStart, buildCopilotSessionStart},
	{"hook_event", matchHookEvent, buildHookEvent},
	{"opencode_idle", matchOpenCodeIdle, buildOpenCodeIdle},
	{"codex_turn_complete", matchCodexTurnComplete, buildCodexTurnComplete},
}

// Normalize converts raw hook input (stdin bytes plus any positional
// arguments) into an Event. It is total: any input, including invalid
// JSON, degrades to the unknown platform rather than an error.
func Normalize(raw []byte, args []string) Event {
	raw = bytes.TrimSpace(raw)

	// Argument fallback, used by Aider's notification hook.
	if len(raw) == 0 && len(args) > 0 {
		return Event{
			Platform: PlatformAider,
			Kind:     "notification",
			Message:  strings.Join(args, " "),
		}
	}
	if len(raw) == 0 {
		return Event{Platform: PlatformUnknown, Kind: "notification"}
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil || payload == nil {
		// Non-JSON stdin: treat the text as a plain message.
		return Event{
			Platform: PlatformUnknown,
			Kind:     "notification",
			Message:  string(raw),
		}
	}

	ev := detect(payload)
	ev.Workdir = str(payload, "cwd")
	return ev
}

func detect(p map[string]any) Event {
	for _, d := range detectors {
		if d.match(p) {
			return d.build(p)
		}
	}
	return fallbackEvent(p)
}

// --- Claude Code: keyed by notification_type ---

func matchClaudeCode(p map[string]any) bool {
	return has(p, "notification_type")
}

func buildClaudeCode(p map[string]any) Event {
	ntype := str(p, "notification_type")
	var msg string
	switch ntype {
	case "idle_prompt":
		msg = "✅ Task completed — waiting for your input"
	case "permission_prompt":
		msg = "🔐 Permission required"
	default:
		// Unmapped types keep the provided message, or echo the type.
		msg = str(p, "message")
		if msg == "" {
			msg = ntype
		}
	}
	return Event{Platform: PlatformClaudeCode, Kind: kindOr(ntype), Message: msg}
}

// --- Copilot CLI sessionEnd: "reason" without "toolName" ---

var copilotReasonMessages = map[string]string{
	"complete":  "Task completed",
	"error":     "Session ended with error",
	"abort":     "Session aborted",
	"timeout":   "Session timed out",
	"user_exit": "User exited session",
}

func matchCopilotSessionEnd(p map[string]any) bool {
	return has(p, "reason") && !has(p, "toolName")
}

func buildCopilotSessionEnd(p map[string]any) Event {
	reason := str(p, "reason")
	msg, ok := copilotReasonMessages[reason]
	if !ok {
		msg = fmt.Sprintf("Session ended (%s)", reason)
	}
	return Event{Platform: PlatformCopilotCLI, Kind: "sessionEnd", Message: msg}
}

// --- Copilot CLI postToolUse: "toolName" plus "toolResult" ---

func matchCopilotPostToolUse(p map[string]any) bool {
	return has(p, "toolName") && has(p, "toolResult")
}

func buildCopilotPostToolUse(p map[string]any) Event {
	tool := str(p, "toolName")
	resultType := ""
	if result, ok := p["toolResult"].(map[string]any); ok {
		resultType = str(result, "resultType")
	}
	var msg string
	switch resultType {
	case "success":
		msg = fmt.Sprintf("Tool '%s' completed successfully", tool)
	case "failure":
		msg = fmt.Sprintf("Tool '%s' failed", tool)
	case "denied":
		msg = fmt.Sprintf("Tool '%s' was denied", tool)
	default:
		msg = fmt.Sprintf("Tool '%s' finished", tool)
	}
	return Event{Platform: PlatformCopilotCLI, Kind: "postToolUse", Message: msg}
}

// --- Copilot CLI sessionStart: "source" without tool or notification keys ---

func matchCopilotSessionStart(p map[string]any) bool {
	return has(p, "source") && !has(p, "toolName") && !has(p, "notification_type")
}

func buildCopilotSessionStart(p map[string]any) Event {
	return Event{
		Platform: PlatformCopilotCLI,
		Kind:     "sessionStart",
		Message:  fmt.Sprintf("Session started (%s)", str(p, "source")),
	}
}

// --- Generic hook family: non-empty hook_event_name, used by Cursor and
// other editors; the "agent" field disambiguates the platform ---

func matchHookEvent(p map[string]any) bool {
	return str(p, "hook_event_name") != ""
}

func buildHookEvent(p map[string]any) Event {
	hook := str(p, "hook_event_name")
	var msg string
	switch hook {
	case "sessionEnd", "stop":
		if str(p, "status") == "completed" {
			msg = "Task completed"
		} else {
			msg = "Session ended"
		}
	case "postToolUse":
		tool := str(p, "tool_name")
		if tool == "" {
			tool = "tool"
		}
		msg = fmt.Sprintf("Tool '%s' finished", tool)
	case "afterFileEdit":
		file := str(p, "file_path")
		if file == "" {
			file = "file"
		}
		msg = fmt.Sprintf("Edited %s", filepath.Base(file))
	default:
		msg = hook
	}

	platform := PlatformCopilotCLI
	if strings.Contains(strings.ToLower(str(p, "agent")), "cursor") {
		platform = PlatformCursor
	}
	return Event{Platform: platform, Kind: hook, Message: msg}
}

// --- OpenCode: explicit platform tag plus an idle event_type ---

func matchOpenCodeIdle(p map[string]any) bool {
	if str(p, "platform") != string(PlatformOpenCode) {
		return false
	}
	switch str(p, "event_type") {
	case "session.idle", "idle":
		return true
	}
	return false
}

func buildOpenCodeIdle(p map[string]any) Event {
	msg := str(p, "message")
	if msg == "" {
		msg = "Task completed"
	}
	return Event{
		Platform: PlatformOpenCode,
		Kind:     str(p, "event_type"),
		Message:  fmt.Sprintf("✅ %s — waiting for your input", msg),
	}
}

// --- Codex: turn-completion sentinel, as key or as type value ---

func matchCodexTurnComplete(p map[string]any) bool {
	return has(p, "agent-turn-complete") || str(p, "type") == "agent-turn-complete"
}

func buildCodexTurnComplete(p map[string]any) Event {
	msg := str(p, "message")
	if msg == "" {
		msg = "Agent turn completed"
	}
	return Event{Platform: PlatformCodex, Kind: "agent-turn-complete", Message: msg}
}

// --- Fallback ---

func fallbackEvent(p map[string]any) Event {
	msg := str(p, "message")
	if msg == "" && !has(p, "message") {
		if b, err := json.Marshal(p); err == nil {
			msg = string(b)
		}
	}
	return Event{Platform: PlatformUnknown, Kind: "notification", Message: msg}
}

// has reports key presence regardless of value type.
func has(p map[string]any, key string) bool {
	_, ok := p[key]
	return ok
}

// str returns the string value under key, or "" if absent or non-string.
func str(p map[string]any, key string) string {
	s, _ := p[key].(string)
	return s
}

func kindOr(kind string) string {
	if kind == "" {
		return "notification"
	}
	return kind
}
