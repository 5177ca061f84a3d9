package tape

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Gaurav-Gosain/tuios-layout/internal/container"
	"github.com/Gaurav-Gosain/tuios-layout/internal/direction"
)

// SyntaxError is a problem found while parsing a .tape file.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
	Err    error // underlying cause, if any
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d:%d: %s", e.Line, e.Column, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Parser parses .tape files into commands
type Parser struct {
	lexer   *Lexer
	curTok  Token
	peekTok Token
	errors  []error
}

// NewParser creates a new parser from a lexer
func NewParser(l *Lexer) *Parser {
	p := &Parser{lexer: l}
	p.nextToken()
	p.nextToken()
	return p
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.lexer.NextToken()
}

// Parse parses the entire tape file and returns all commands. Lines that
// fail to parse are skipped and reported through Errors.
func (p *Parser) Parse() []Command {
	var commands []Command

	for p.curTok.Type != TOKEN_EOF {
		if p.curTok.Type == TOKEN_NEWLINE {
			p.nextToken()
			continue
		}

		cmd, ok := p.parseCommand()
		p.skipToNextLine()
		if ok {
			commands = append(commands, cmd)
		}
	}

	return commands
}

// parseCommand parses a single command line
func (p *Parser) parseCommand() (Command, bool) {
	cmd := Command{
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
	}

	tt := p.curTok.Type
	if !tt.IsCommand() {
		if tt == TOKEN_ILLEGAL {
			p.addError(fmt.Sprintf("illegal input %q", p.curTok.Literal), nil)
		} else {
			p.addError(fmt.Sprintf("unknown command %q", p.curTok.Literal), nil)
		}
		return cmd, false
	}
	cmd.Type = CommandType(tt)
	p.nextToken()

	if !p.parseDelay(&cmd) {
		return cmd, false
	}

	var ok bool
	switch tt {
	case TOKEN_OPEN_WINDOW:
		ok = p.parseOpenWindow(&cmd)
	case TOKEN_FOCUS, TOKEN_MOVE:
		ok = p.parseDirection(&cmd)
	case TOKEN_SPLIT:
		ok = p.parseOrientation(&cmd)
	case TOKEN_RESIZE:
		ok = p.parseAmount(&cmd)
	case TOKEN_SWITCH_WS, TOKEN_MOVE_TO_WS:
		ok = p.parseWorkspace(&cmd)
	default:
		ok = true
	}
	if !ok {
		return cmd, false
	}

	if !p.atLineEnd() {
		p.addError(fmt.Sprintf("unexpected %q after %s", p.curTok.Literal, cmd.Type), nil)
		return cmd, false
	}
	return cmd, true
}

// parseDelay reads an optional @<duration> modifier
func (p *Parser) parseDelay(cmd *Command) bool {
	if p.curTok.Type != TOKEN_AT {
		return true
	}
	p.nextToken()
	if p.curTok.Type != TOKEN_DURATION {
		p.addError("expected duration after @", nil)
		return false
	}
	d, err := time.ParseDuration(p.curTok.Literal)
	if err != nil || d < 0 {
		p.addError(fmt.Sprintf("invalid duration: %s", p.curTok.Literal), err)
		return false
	}
	cmd.Delay = d
	p.nextToken()
	return true
}

// parseOpenWindow reads the optional window title
func (p *Parser) parseOpenWindow(cmd *Command) bool {
	if p.curTok.Type == TOKEN_STRING {
		cmd.Title = p.curTok.Literal
		p.nextToken()
	}
	return true
}

func (p *Parser) parseDirection(cmd *Command) bool {
	if p.atLineEnd() {
		p.addError(fmt.Sprintf("%s expects a direction", cmd.Type), nil)
		return false
	}
	d, err := direction.Parse(p.curTok.Literal)
	if err != nil {
		p.addError(err.Error(), err)
		return false
	}
	cmd.Direction = d
	p.nextToken()
	return true
}

func (p *Parser) parseOrientation(cmd *Command) bool {
	if p.atLineEnd() {
		p.addError("Split expects horizontal or vertical", nil)
		return false
	}
	o, err := container.ParseOrientation(p.curTok.Literal)
	if err != nil {
		p.addError(err.Error(), err)
		return false
	}
	cmd.Orientation = o
	p.nextToken()
	return true
}

func (p *Parser) parseAmount(cmd *Command) bool {
	if p.curTok.Type != TOKEN_NUMBER {
		p.addError(fmt.Sprintf("Resize expects a number, got %v", p.curTok.Type), nil)
		return false
	}
	amount, err := strconv.ParseFloat(p.curTok.Literal, 64)
	if err != nil || amount < -1 || amount > 1 {
		p.addError(fmt.Sprintf("Resize amount must be between -1 and 1, got %s", p.curTok.Literal), err)
		return false
	}
	cmd.Amount = amount
	p.nextToken()
	return true
}

func (p *Parser) parseWorkspace(cmd *Command) bool {
	if p.curTok.Type != TOKEN_NUMBER {
		p.addError(fmt.Sprintf("%s expects a number, got %v", cmd.Type, p.curTok.Type), nil)
		return false
	}
	n, err := strconv.Atoi(p.curTok.Literal)
	if err != nil || n < 1 {
		p.addError(fmt.Sprintf("invalid workspace number: %s", p.curTok.Literal), err)
		return false
	}
	cmd.Workspace = n
	p.nextToken()
	return true
}

func (p *Parser) atLineEnd() bool {
	return p.curTok.Type == TOKEN_NEWLINE || p.curTok.Type == TOKEN_EOF
}

// skipToNextLine skips tokens until the next newline
func (p *Parser) skipToNextLine() {
	for !p.atLineEnd() {
		p.nextToken()
	}
}

// addError records a syntax error at the current token
func (p *Parser) addError(msg string, cause error) {
	p.errors = append(p.errors, &SyntaxError{
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
		Msg:    msg,
		Err:    cause,
	})
}

// Errors returns the list of parser errors
func (p *Parser) Errors() []error {
	return p.errors
}

// ParseFile parses a tape file from a string. The error joins every
// syntax error found; commands holds the lines that parsed cleanly.
func ParseFile(content string) ([]Command, error) {
	p := NewParser(NewLexer(content))
	commands := p.Parse()
	return commands, errors.Join(p.Errors()...)
}

// ReadFile reads and parses the tape file at path.
func ReadFile(path string) ([]Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tape: %w", err)
	}
	return ParseFile(string(data))
}
