package tape

// TokenType represents the type of a token in a .tape file
type TokenType string

const (
	// Special tokens
	TOKEN_EOF     TokenType = "EOF"
	TOKEN_ILLEGAL TokenType = "ILLEGAL"
	TOKEN_NEWLINE TokenType = "NEWLINE"

	// Literals
	TOKEN_STRING     TokenType = "STRING"
	TOKEN_NUMBER     TokenType = "NUMBER"
	TOKEN_DURATION   TokenType = "DURATION"
	TOKEN_IDENTIFIER TokenType = "IDENTIFIER"

	// Symbols
	TOKEN_AT TokenType = "AT"

	// Commands - Windows
	TOKEN_OPEN_WINDOW  TokenType = "OpenWindow"
	TOKEN_CLOSE_WINDOW TokenType = "CloseWindow"
	TOKEN_FOCUS        TokenType = "Focus"
	TOKEN_MOVE         TokenType = "Move"

	// Commands - Layout
	TOKEN_SPLIT  TokenType = "Split"
	TOKEN_RESIZE TokenType = "Resize"

	// Commands - Workspace
	TOKEN_SWITCH_WS  TokenType = "SwitchWorkspace"
	TOKEN_MOVE_TO_WS TokenType = "MoveToWorkspace"

	// Commands - Inspection
	TOKEN_PRINT    TokenType = "Print"
	TOKEN_VALIDATE TokenType = "Validate"
)

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// IsCommand returns true if the token type is a command
func (tt TokenType) IsCommand() bool {
	switch tt {
	case TOKEN_OPEN_WINDOW, TOKEN_CLOSE_WINDOW, TOKEN_FOCUS, TOKEN_MOVE,
		TOKEN_SPLIT, TOKEN_RESIZE,
		TOKEN_SWITCH_WS, TOKEN_MOVE_TO_WS,
		TOKEN_PRINT, TOKEN_VALIDATE:
		return true
	}
	return false
}

// KeywordTokenMap maps string keywords to token types
var KeywordTokenMap = map[string]TokenType{
	"OpenWindow":      TOKEN_OPEN_WINDOW,
	"CloseWindow":     TOKEN_CLOSE_WINDOW,
	"Focus":           TOKEN_FOCUS,
	"Move":            TOKEN_MOVE,
	"Split":           TOKEN_SPLIT,
	"Resize":          TOKEN_RESIZE,
	"SwitchWorkspace": TOKEN_SWITCH_WS,
	"MoveToWorkspace": TOKEN_MOVE_TO_WS,
	"Print":           TOKEN_PRINT,
	"Validate":        TOKEN_VALIDATE,
}

// LookupKeyword returns the token type for a keyword, or TOKEN_IDENTIFIER if not a keyword
func LookupKeyword(ident string) TokenType {
	if tt, ok := KeywordTokenMap[ident]; ok {
		return tt
	}
	return TOKEN_IDENTIFIER
}
