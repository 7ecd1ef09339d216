package syntax

import "slices"

// nonterminal names, shared with the AST builder
const (
	NProgram      = "Program"
	NBlock        = "Block"
	NStmtList     = "StmtList"
	NStmt         = "Stmt"
	NVarDecl      = "VarDecl"
	NVarInitOpt   = "VarInitOpt"
	NType         = "Type"
	NAssignment   = "Assignment"
	NIfStmt       = "IfStmt"
	NElseOpt      = "ElseOpt"
	NWhileStmt    = "WhileStmt"
	NExportStmt   = "ExportStmt"
	NExpr         = "Expr"
	NOrExpr       = "OrExpr"
	NOrTail       = "OrTail"
	NAndExpr      = "AndExpr"
	NAndTail      = "AndTail"
	NEqExpr       = "EqExpr"
	NEqTail       = "EqTail"
	NRelExpr      = "RelExpr"
	NRelTail      = "RelTail"
	NAddExpr      = "AddExpr"
	NAddTail      = "AddTail"
	NTerm         = "Term"
	NTermTail     = "TermTail"
	NFactor       = "Factor"
	NFunctionCall = "FunctionCall"
	NNumber       = "Number"
)

var (
	typeNames = []TokenType{
		TokenIntType, TokenFloatType, TokenStringType, TokenVideoType, TokenAudioType,
	}

	operationTokens = []TokenType{
		TokenOpResize, TokenOpFlip, TokenOpSpeed, TokenOpFadeIn, TokenOpFadeOut,
		TokenOpMute, TokenOpAddMusic, TokenOpConcat, TokenOpTrim,
	}

	exprStarts = append([]TokenType{
		TokenIdentifier, TokenIntLiteral, TokenFloatLiteral, TokenStringLiteral,
		TokenLParen, TokenNot, TokenMinus,
	}, operationTokens...)

	// expression statements may not start with an identifier: that lookahead selects Assignment
	exprStmtStarts = slices.DeleteFunc(slices.Clone(exprStarts), func(t TokenType) bool {
		return t == TokenIdentifier
	})

	stmtStarts = concat(
		typeNames,
		[]TokenType{TokenIdentifier, TokenIf, TokenWhile, TokenExport},
		exprStmtStarts,
	)

	exprFollow = []TokenType{TokenRParen, TokenSemicolon}
	orFollow   = exprFollow
	andFollow  = concat(orFollow, []TokenType{TokenOr})
	eqFollow   = concat(andFollow, []TokenType{TokenAnd})
	relFollow  = concat(eqFollow, []TokenType{TokenEq, TokenNotEq})
	addFollow  = concat(relFollow, []TokenType{TokenLess, TokenGreater, TokenLessEq, TokenGreaterEq})
	termFollow = concat(addFollow, []TokenType{TokenPlus, TokenMinus})
)

func concat(lists ...[]TokenType) []TokenType {
	return slices.Concat(lists...)
}

func one(t TokenType) []TokenType {
	return []TokenType{t}
}

// argument nonterminal for each operation
var operationArgs = map[TokenType]string{
	TokenOpResize:   "ResizeArgs",
	TokenOpFlip:     "FlipArgs",
	TokenOpSpeed:    "SpeedArgs",
	TokenOpFadeIn:   "FadeInArgs",
	TokenOpFadeOut:  "FadeOutArgs",
	TokenOpMute:     "MuteArgs",
	TokenOpAddMusic: "AddMusicArgs",
	TokenOpConcat:   "ConcatArgs",
	TokenOpTrim:     "TrimArgs",
}

func buildDefaultTable() *Table {
	b := NewTableBuilder(NProgram)
	numbers := []TokenType{TokenIntLiteral, TokenFloatLiteral}

	// program structure
	b.Add(NProgram, one(TokenMain), T(TokenMain), N(NBlock), T(TokenEOF))
	b.Add(NBlock, one(TokenLBrace), T(TokenLBrace), N(NStmtList), T(TokenRBrace))
	b.Add(NStmtList, stmtStarts, N(NStmt), N(NStmtList))
	b.Add(NStmtList, one(TokenRBrace))

	// statements
	b.Add(NStmt, typeNames, N(NVarDecl), T(TokenSemicolon))
	b.Add(NStmt, one(TokenIdentifier), N(NAssignment), T(TokenSemicolon))
	b.Add(NStmt, one(TokenIf), N(NIfStmt))
	b.Add(NStmt, one(TokenWhile), N(NWhileStmt))
	b.Add(NStmt, one(TokenExport), N(NExportStmt), T(TokenSemicolon))
	b.Add(NStmt, exprStmtStarts, N(NExpr), T(TokenSemicolon))

	b.Add(NVarDecl, typeNames, N(NType), T(TokenColon), T(TokenIdentifier), N(NVarInitOpt))
	b.Add(NVarInitOpt, one(TokenColon), T(TokenColon), N(NExpr))
	b.Add(NVarInitOpt, one(TokenAssign), T(TokenAssign), N(NExpr))
	b.Add(NVarInitOpt, one(TokenSemicolon))
	for _, t := range typeNames {
		b.Add(NType, one(t), T(t))
	}

	b.Add(NAssignment, one(TokenIdentifier), T(TokenIdentifier), T(TokenAssign), N(NExpr))

	b.Add(NIfStmt, one(TokenIf),
		T(TokenIf), T(TokenLParen), N(NExpr), T(TokenRParen), N(NBlock), N(NElseOpt))
	b.Add(NElseOpt, one(TokenElse), T(TokenElse), N(NBlock))
	b.Add(NElseOpt, concat(stmtStarts, one(TokenRBrace)))

	b.Add(NWhileStmt, one(TokenWhile),
		T(TokenWhile), T(TokenLParen), N(NExpr), T(TokenRParen), N(NBlock))

	b.Add(NExportStmt, one(TokenExport),
		T(TokenExport), T(TokenIdentifier), T(TokenAs), T(TokenStringLiteral))

	// expression cascade
	b.Add(NExpr, exprStarts, N(NOrExpr))

	b.Add(NOrExpr, exprStarts, N(NAndExpr), N(NOrTail))
	b.Add(NOrTail, one(TokenOr), T(TokenOr), N(NAndExpr), N(NOrTail))
	b.Add(NOrTail, orFollow)

	b.Add(NAndExpr, exprStarts, N(NEqExpr), N(NAndTail))
	b.Add(NAndTail, one(TokenAnd), T(TokenAnd), N(NEqExpr), N(NAndTail))
	b.Add(NAndTail, andFollow)

	b.Add(NEqExpr, exprStarts, N(NRelExpr), N(NEqTail))
	for _, op := range []TokenType{TokenEq, TokenNotEq} {
		b.Add(NEqTail, one(op), T(op), N(NRelExpr), N(NEqTail))
	}
	b.Add(NEqTail, eqFollow)

	b.Add(NRelExpr, exprStarts, N(NAddExpr), N(NRelTail))
	for _, op := range []TokenType{TokenLess, TokenGreater, TokenLessEq, TokenGreaterEq} {
		b.Add(NRelTail, one(op), T(op), N(NAddExpr), N(NRelTail))
	}
	b.Add(NRelTail, relFollow)

	b.Add(NAddExpr, exprStarts, N(NTerm), N(NAddTail))
	for _, op := range []TokenType{TokenPlus, TokenMinus} {
		b.Add(NAddTail, one(op), T(op), N(NTerm), N(NAddTail))
	}
	b.Add(NAddTail, addFollow)

	b.Add(NTerm, exprStarts, N(NFactor), N(NTermTail))
	for _, op := range []TokenType{TokenStar, TokenSlash} {
		b.Add(NTermTail, one(op), T(op), N(NFactor), N(NTermTail))
	}
	b.Add(NTermTail, termFollow)

	for _, t := range []TokenType{TokenIdentifier, TokenIntLiteral, TokenFloatLiteral, TokenStringLiteral} {
		b.Add(NFactor, one(t), T(t))
	}
	b.Add(NFactor, one(TokenLParen), T(TokenLParen), N(NExpr), T(TokenRParen))
	b.Add(NFactor, one(TokenNot), T(TokenNot), N(NFactor))
	b.Add(NFactor, one(TokenMinus), T(TokenMinus), N(NFactor))
	b.Add(NFactor, operationTokens, N(NFunctionCall))

	// editing operations, one fixed argument shape each
	for _, op := range operationTokens {
		b.Add(NFunctionCall, one(op), T(op), T(TokenLBracket), N(operationArgs[op]), T(TokenRBracket))
	}
	b.Add("ResizeArgs", one(TokenIdentifier),
		T(TokenIdentifier), T(TokenComma), T(TokenIntLiteral), T(TokenComma), T(TokenIntLiteral))
	b.Add("FlipArgs", one(TokenStringLiteral), T(TokenStringLiteral))
	b.Add("SpeedArgs", numbers, N(NNumber))
	b.Add("FadeInArgs", numbers, N(NNumber))
	b.Add("FadeOutArgs", numbers, N(NNumber))
	b.Add("MuteArgs", one(TokenRBracket))
	b.Add("AddMusicArgs", one(TokenStringLiteral), T(TokenStringLiteral))
	b.Add("ConcatArgs", one(TokenIdentifier), T(TokenIdentifier), T(TokenComma), T(TokenIdentifier))
	b.Add("TrimArgs", numbers, N(NNumber), T(TokenComma), N(NNumber))
	for _, t := range numbers {
		b.Add(NNumber, one(t), T(t))
	}

	return b.Build()
}
