package emoji

// emojiMap holds emoji and plain-terminal fallback pairs.
var emojiMap = map[string][2]string{
	"error":      {"❌", "[ERR]"},
	"warning":    {"⚠️", "[WRN]"},
	"info":       {"ℹ️", "[INF]"},
	"success":    {"✅", "[OK]"},
	"statistics": {"📊", "[STATS]"},
	"laptop":     {"💻", "[LAP]"},
	"money":      {"💰", "[PRC]"},
	"trophy":     {"🏆", "[1ST]"},
	"medal":      {"🥈", "[2ND]"},
	"store":      {"🏬", "[STORE]"},
	"star":       {"⭐", "[*]"},
	"filter":     {"🔍", "[FLT]"},
	"chart":      {"📈", "[CHT]"},
	"rocket":     {"🚀", "[LAP]"},
	"help":       {"❓", "[?]"},
	"target":     {"🎯", "[>]"},
	"door":       {"🚪", "[EXIT]"},
	"number":     {"🔢", "[#]"},
}

var emojiDisabled bool

// SetEmojiDisabled sets the global emoji disabled state.
func SetEmojiDisabled(disabled bool) {
	emojiDisabled = disabled
}

// IsEmojiDisabled returns the current emoji disabled state.
func IsEmojiDisabled() bool {
	return emojiDisabled
}

// GetEmoji returns the emoji for key, or its fallback when emojis are
// disabled.
func GetEmoji(key string) string {
	if mapping, exists := emojiMap[key]; exists {
		if emojiDisabled {
			return mapping[1]
		}
		return mapping[0]
	}
	return "[?]"
}
