package syntax

import (
	"fmt"

	"github.com/reusee/clipc/diags"
)

type Pos = diags.Pos

type Token struct {
	Type TokenType
	Text string
	Pos  Pos
}

func (t Token) String() string {
	return fmt.Sprintf("%-16s [ %s ] -> %d:%d", t.Type, t.Text, t.Pos.Line, t.Pos.Column)
}

type TokenType uint8

const (
	TokenInvalid TokenType = iota

	// keywords
	TokenMain
	TokenIf
	TokenElse
	TokenWhile
	TokenExport
	TokenAs
	TokenNot
	TokenAnd
	TokenOr

	// type names
	TokenIntType
	TokenFloatType
	TokenStringType
	TokenVideoType
	TokenAudioType

	// literals
	TokenIntLiteral
	TokenFloatLiteral
	TokenStringLiteral
	TokenIdentifier

	// operators
	TokenAssign
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenEq
	TokenNotEq
	TokenLess
	TokenGreater
	TokenLessEq
	TokenGreaterEq

	// punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenComma
	TokenSemicolon
	TokenColon

	// editing operations
	TokenOpResize
	TokenOpFlip
	TokenOpSpeed
	TokenOpFadeIn
	TokenOpFadeOut
	TokenOpMute
	TokenOpAddMusic
	TokenOpConcat
	TokenOpTrim

	TokenEOF

	numTokenTypes
)

var tokenNames = [numTokenTypes]string{
	TokenInvalid:       "INVALID",
	TokenMain:          "MAIN",
	TokenIf:            "IF",
	TokenElse:          "ELSE",
	TokenWhile:         "WHILE",
	TokenExport:        "EXPORT",
	TokenAs:            "AS",
	TokenNot:           "NOT",
	TokenAnd:           "AND",
	TokenOr:            "OR",
	TokenIntType:       "INT_TYPE",
	TokenFloatType:     "FLOAT_TYPE",
	TokenStringType:    "STRING_TYPE",
	TokenVideoType:     "VIDEO_TYPE",
	TokenAudioType:     "AUDIO_TYPE",
	TokenIntLiteral:    "INT_LITERAL",
	TokenFloatLiteral:  "FLOAT_LITERAL",
	TokenStringLiteral: "STRING_LITERAL",
	TokenIdentifier:    "IDENTIFIER",
	TokenAssign:        "ASSIGN",
	TokenPlus:          "PLUS",
	TokenMinus:         "MINUS",
	TokenStar:          "MULT",
	TokenSlash:         "DIV",
	TokenEq:            "EQ",
	TokenNotEq:         "NEQ",
	TokenLess:          "LT",
	TokenGreater:       "GT",
	TokenLessEq:        "LE",
	TokenGreaterEq:     "GE",
	TokenLParen:        "LPAREN",
	TokenRParen:        "RPAREN",
	TokenLBrace:        "LBRACE",
	TokenRBrace:        "RBRACE",
	TokenLBracket:      "LBRACKET",
	TokenRBracket:      "RBRACKET",
	TokenComma:         "COMMA",
	TokenSemicolon:     "SEMICOLON",
	TokenColon:         "COLON",
	TokenOpResize:      "OP_RESIZE",
	TokenOpFlip:        "OP_FLIP",
	TokenOpSpeed:       "OP_SPEED",
	TokenOpFadeIn:      "OP_FADEIN",
	TokenOpFadeOut:     "OP_FADEOUT",
	TokenOpMute:        "OP_MUTE",
	TokenOpAddMusic:    "OP_ADD_MUSIC",
	TokenOpConcat:      "OP_CONCAT",
	TokenOpTrim:        "OP_TRIM",
	TokenEOF:           "EOF",
}

func (t TokenType) String() string {
	if t < numTokenTypes {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

func (t TokenType) IsOperation() bool {
	return t >= TokenOpResize && t <= TokenOpTrim
}

func (t TokenType) IsTypeName() bool {
	return t >= TokenIntType && t <= TokenAudioType
}

var keywords = map[string]TokenType{
	"main":   TokenMain,
	"if":     TokenIf,
	"else":   TokenElse,
	"while":  TokenWhile,
	"export": TokenExport,
	"as":     TokenAs,
	"not":    TokenNot,
	"and":    TokenAnd,
	"or":     TokenOr,
	"int":    TokenIntType,
	"float":  TokenFloatType,
	"string": TokenStringType,
	"video":  TokenVideoType,
	"audio":  TokenAudioType,
}

var operations = map[string]TokenType{
	"@resize":    TokenOpResize,
	"@flip":      TokenOpFlip,
	"@speed":     TokenOpSpeed,
	"@fadein":    TokenOpFadeIn,
	"@fadeout":   TokenOpFadeOut,
	"@mute":      TokenOpMute,
	"@add_music": TokenOpAddMusic,
	"@concat":    TokenOpConcat,
	"@trim":      TokenOpTrim,
}

var compoundOperators = map[string]TokenType{
	"==": TokenEq,
	"!=": TokenNotEq,
	"<=": TokenLessEq,
	">=": TokenGreaterEq,
	"&&": TokenAnd,
	"||": TokenOr,
}

var symbols = map[rune]TokenType{
	'=': TokenAssign,
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'<': TokenLess,
	'>': TokenGreater,
	'(': TokenLParen,
	')': TokenRParen,
	'{': TokenLBrace,
	'}': TokenRBrace,
	'[': TokenLBracket,
	']': TokenRBracket,
	',': TokenComma,
	';': TokenSemicolon,
	':': TokenColon,
}

// OperationName returns the sigil-prefixed source spelling of an operation tag.
func OperationName(t TokenType) string {
	for name, typ := range operations {
		if typ == t {
			return name
		}
	}
	return ""
}
