// Package ast 提供元件网表解析的抽象语法树（AST）功能。
// 它能够解析包含元件定义、命令和注释的网表文本，
// 并构建相应的语法树结构供后续处理使用。
//
// 网表示例：
//
//	.value lx 7        # 变量
//	.power 60          # 工作条件
//	l1 [%lx]           # 叶子元件：名称前缀为类型
//	p1 [l1]            # 并联组合，列表为已定义元件
//	x1 [p1]            # 组合元件包装并联组合
//	p2 [l1, x1]
//	.root p2
package ast

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// 常量定义 - 用于词法分析和语法分析的关键字和符号
const (
	tokenValue             = ".value" // 值设置命令
	tokenPower             = ".power" // 工作条件命令
	tokenRoot              = ".root"  // 根元件命令
	tokenNewline           = "\n"     // 换行符
	tokenSpace             = " "      // 空格
	tokenTab               = "\t"     // 制表符
	tokenReturn            = "\r"     // 回车符
	tokenLBracket          = "["      // 左方括号
	tokenRBracket          = "]"      // 右方括号
	tokenComma             = ","      // 逗号分隔符
	tokenCommentHash       = "#"      // # 注释
	tokenCommentLine       = "//"     // // 行注释
	tokenCommentBlockStart = "/*"     // /* 块注释开始
	tokenCommentBlockEnd   = "*/"     // */ 块注释结束
)

// ElementNode 表示元件定义节点
type ElementNode struct {
	Name   string  // 元件名称，如 "R1"、"p2"
	Values []Value // 参数或子元件列表
	Line   int     // 行号
}

// CommentNode 表示注释节点
type CommentNode struct {
	Text string // 注释文本
	Line int    // 行号
}

// ParseTree 解析树
type ParseTree struct {
	ElementNodes []*ElementNode    // 元件列表
	CommentNodes []*CommentNode    // 注释列表
	ValueNodes   map[string]string // 变量列表
	Power        *Value            // 工作条件，未设置时为 nil
	Root         *Value            // 根元件名称，未设置时为 nil
}

// String 打印解析树用于调试
func (parseTree *ParseTree) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "找到 %d 个元件, %d 个值设置, %d 个注释\n",
		len(parseTree.ElementNodes), len(parseTree.ValueNodes), len(parseTree.CommentNodes))
	for i, n := range parseTree.ElementNodes {
		fmt.Fprintf(&b, "元件 %d: %s (行号: %d) [", i+1, n.Name, n.Line)
		for j := range n.Values {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s(variable:%v)", n.Values[j].Value, n.Values[j].IsVar)
		}
		b.WriteString("]\n")
	}
	if parseTree.Power != nil {
		fmt.Fprintf(&b, "工作条件: %s\n", parseTree.Power.Value)
	}
	if parseTree.Root != nil {
		fmt.Fprintf(&b, "根元件: %s\n", parseTree.Root.Value)
	}
	return b.String()
}

// token 带行号的标识符
type token struct {
	text string
	line int
}

// lexer 跳过空白与注释的标识符流
type lexer struct {
	scanner   *bufio.Scanner
	parseTree *ParseTree
	line      int
	pending   *token
}

// next 读取下一个有效标识符，换行符作为语句分隔返回
func (lex *lexer) next() (token, bool) {
	if lex.pending != nil {
		tok := *lex.pending
		lex.pending = nil
		return tok, true
	}
	for lex.scanner.Scan() {
		text := lex.scanner.Text()
		line := lex.line
		switch {
		case text == tokenNewline:
			lex.line++
			return token{text: text, line: line}, true
		case text == tokenSpace || text == tokenTab || text == tokenReturn || text == tokenComma:
			continue
		case parseComment(text, line, lex.parseTree):
			lex.line += strings.Count(text, tokenNewline)
			continue
		}
		return token{text: text, line: line}, true
	}
	return token{}, false
}

// nextInLine 读取当前语句中的下一个标识符
func (lex *lexer) nextInLine(line int, what string) (token, error) {
	tok, ok := lex.next()
	if !ok || tok.text == tokenNewline {
		return token{}, errorAtLine(line, "缺少%s", what)
	}
	return tok, nil
}

// NewParseTree 生成网表解析树
func NewParseTree(r io.Reader) (parseTree *ParseTree, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(SplitTokens)
	// 创建解析树
	parseTree = &ParseTree{
		ValueNodes: map[string]string{},
	}
	lex := &lexer{scanner: scanner, parseTree: parseTree, line: 1}
	for {
		tok, ok := lex.next()
		if !ok {
			break
		}
		switch {
		case tok.text == tokenNewline:
			continue
		case strings.EqualFold(tok.text, tokenValue):
			name, err := lex.nextInLine(tok.line, ".value 命令名称")
			if err != nil {
				return nil, err
			}
			value, err := lex.nextInLine(tok.line, ".value 命令值")
			if err != nil {
				return nil, err
			}
			parseTree.ValueNodes[name.text] = value.text
		case strings.EqualFold(tok.text, tokenPower):
			value, err := lex.nextInLine(tok.line, ".power 命令值")
			if err != nil {
				return nil, err
			}
			parseTree.Power = newValue(value)
		case strings.EqualFold(tok.text, tokenRoot):
			name, err := lex.nextInLine(tok.line, ".root 命令元件名称")
			if err != nil {
				return nil, err
			}
			parseTree.Root = newValue(name)
		case tok.text[0] == '.':
			return nil, errorAtLine(tok.line, "未知命令 '%s'", tok.text)
		case isLetter(tok.text[0]):
			if err := parseElementDefinition(lex, tok, parseTree); err != nil {
				return nil, err
			}
		default:
			return nil, errorAtLine(tok.line, "无法识别的内容 '%s'", tok.text)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("读取网表时出错: %w", err)
	}
	return parseTree, nil
}

// parseElementDefinition 解析元件定义 NAME [ v1, v2 ... ]
func parseElementDefinition(lex *lexer, name token, parseTree *ParseTree) error {
	if !isIdentifier(name.text) {
		return errorAtLine(name.line, "元件名称无效 '%s'", name.text)
	}
	tok, err := lex.nextInLine(name.line, "列表开始标记 [")
	if err != nil {
		return err
	}
	if tok.text != tokenLBracket {
		return errorAtLine(name.line, "缺少列表开始标记 [，得到 '%s'", tok.text)
	}
	var values []Value
	for {
		tok, ok := lex.next()
		if !ok {
			return errorAtLine(name.line, "缺少列表结束标记 ]")
		}
		if tok.text == tokenRBracket {
			break
		}
		// 列表允许跨行
		if tok.text == tokenNewline {
			continue
		}
		if tok.text == tokenLBracket {
			return errorAtLine(tok.line, "列表不能嵌套")
		}
		values = append(values, *newValue(tok))
	}
	parseTree.ElementNodes = append(parseTree.ElementNodes, &ElementNode{
		Name:   name.text,
		Values: values,
		Line:   name.line,
	})
	return nil
}

// parseComment 解析注释 token
func parseComment(token string, lineNum int, parseTree *ParseTree) bool {
	var comment string
	switch {
	case strings.HasPrefix(token, tokenCommentHash):
		comment = token[1:]
	case strings.HasPrefix(token, tokenCommentLine):
		comment = token[2:]
	case strings.HasPrefix(token, tokenCommentBlockStart):
		comment = strings.TrimSuffix(token[2:], tokenCommentBlockEnd)
	default:
		return false
	}
	parseTree.CommentNodes = append(parseTree.CommentNodes, &CommentNode{
		Text: strings.TrimSpace(comment),
		Line: lineNum,
	})
	return true
}

// errorAtLine 生成带行号的错误信息
func errorAtLine(lineNum int, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("第 %d 行: %s", lineNum, msg)
}

// isLetter 检查是否是字母
func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isIdentifier 检查是否是字母开头、由字母数字下划线组成的名称
func isIdentifier(s string) bool {
	if len(s) == 0 || !isLetter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isLetter(c) && !(c >= '0' && c <= '9') && c != '_' {
			return false
		}
	}
	return true
}

// isDelimiter 检查是否是分隔符
func isDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', ',', '[', ']', '#':
		return true
	}
	return false
}

// scanLineEnd 读取到行尾，不消耗换行符
func scanLineEnd(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// SplitTokens 分割标识符
func SplitTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	switch data[0] {
	case '#':
		return scanLineEnd(data, atEOF)
	case '/':
		if len(data) < 2 && !atEOF {
			return 0, nil, nil
		}
		if len(data) >= 2 {
			switch data[1] {
			case '/':
				return scanLineEnd(data, atEOF)
			case '*':
				if i := bytes.Index(data[2:], []byte(tokenCommentBlockEnd)); i >= 0 {
					i += 4
					return i, data[:i], nil
				}
				if atEOF {
					return len(data), data, nil
				}
				return 0, nil, nil
			}
		}
	case ' ', '\t', '\r', '\n', ',', '[', ']':
		return 1, data[:1], nil
	}
	for i := 1; i < len(data); i++ {
		if isDelimiter(data[i]) {
			return i, data[:i], nil
		}
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
