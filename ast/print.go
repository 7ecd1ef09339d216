package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a node as an S-expression. Top-level statements of a Program
// go on their own lines.
func Print(node Node) string {
	var sb strings.Builder
	printNode(&sb, node)
	return sb.String()
}

func printList(sb *strings.Builder, head string, stmts []Stmt) {
	sb.WriteString("(")
	sb.WriteString(head)
	for _, stmt := range stmts {
		sb.WriteString(" ")
		printNode(sb, stmt)
	}
	sb.WriteString(")")
}

func printNode(sb *strings.Builder, node Node) {
	switch node := node.(type) {

	case nil:
		sb.WriteString("()")

	case *Program:
		sb.WriteString("(program")
		for _, stmt := range node.Statements {
			sb.WriteString("\n  ")
			printNode(sb, stmt)
		}
		sb.WriteString(")")

	case *VarDecl:
		fmt.Fprintf(sb, "(var %s %s", node.Type, node.Name)
		if node.Init != nil {
			sb.WriteString(" ")
			printNode(sb, node.Init)
		}
		sb.WriteString(")")

	case *Assignment:
		fmt.Fprintf(sb, "(set %s ", node.Name)
		printNode(sb, node.Value)
		sb.WriteString(")")

	case *ExportStmt:
		fmt.Fprintf(sb, "(export %s %s)", node.Name, strconv.Quote(node.Output))

	case *IfStmt:
		sb.WriteString("(if ")
		printNode(sb, node.Cond)
		sb.WriteString(" ")
		printList(sb, "then", node.Then)
		if node.Else != nil {
			sb.WriteString(" ")
			printList(sb, "else", node.Else)
		}
		sb.WriteString(")")

	case *WhileStmt:
		sb.WriteString("(while ")
		printNode(sb, node.Cond)
		sb.WriteString(" ")
		printList(sb, "do", node.Body)
		sb.WriteString(")")

	case *BinaryOp:
		fmt.Fprintf(sb, "(%s ", OperatorText(node.Op))
		printNode(sb, node.Left)
		sb.WriteString(" ")
		printNode(sb, node.Right)
		sb.WriteString(")")

	case *UnaryOp:
		fmt.Fprintf(sb, "(%s ", OperatorText(node.Op))
		printNode(sb, node.Operand)
		sb.WriteString(")")

	case *Literal:
		if node.Kind == StringLiteral {
			sb.WriteString(strconv.Quote(node.Value))
		} else {
			sb.WriteString(node.Value)
		}

	case *Identifier:
		sb.WriteString(node.Name)

	case *FunctionCall:
		sb.WriteString("(@")
		sb.WriteString(node.Name())
		for _, arg := range node.Args {
			sb.WriteString(" ")
			printNode(sb, arg)
		}
		sb.WriteString(")")

	default:
		panic(fmt.Errorf("unknown node: %T", node))
	}
}
