package dot

import "fmt"

// ParseError reports a syntax error at a specific source position, with
// the underlying lexer retained so a caller can render a caret-pointer
// diagnostic via Context().
type ParseError struct {
	Msg string
	Pos int
	l   *Lexer
}

func (e *ParseError) Error() string { return fmt.Sprintf("dot: %s", e.Msg) }

// Context renders the offending line with a caret pointing at Pos.
func (e *ParseError) Context() string { return e.l.ErrorContext(e.Pos) }

// Parser turns DOT source into a Graph AST, one token of lookahead at a
// time.
type Parser struct {
	lexer *Lexer
	tok   Token
}

// NewParser returns a Parser over input, not yet primed with a first
// token; call Parse to run it.
func NewParser(input string) *Parser {
	return &Parser{lexer: NewLexer(input), tok: Token{Kind: TokColon}}
}

func (p *Parser) lex() {
	switch p.tok.Kind {
	case TokError:
		panic("dot: cannot lex after an error token")
	case TokEOF:
		panic("dot: cannot lex after EOF")
	default:
		p.tok = p.lexer.NextToken()
	}
}

func (p *Parser) lexHTML() {
	switch p.tok.Kind {
	case TokError:
		panic("dot: cannot lex after an error token")
	case TokEOF:
		panic("dot: cannot lex after EOF")
	default:
		p.tok = p.lexer.NextTokenHTML()
	}
}

func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Pos: p.lexer.pos, l: p.lexer}
}

// Parse lexes and parses a complete top-level graph, verifying that no
// trailing content follows it.
func (p *Parser) Parse() (*Graph, error) {
	p.lex()
	g, err := p.parseGraph(false)
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != TokEOF {
		return nil, p.errorf("unexpected content at the end of the file")
	}
	return g, nil
}

// parseGraph : [ strict ] (graph | digraph) [ ID ] '{' stmt_list '}'
// subgraph   : [ subgraph [ ID ] ] '{' stmt_list '}'
func (p *Parser) parseGraph(isSubgraph bool) (*Graph, error) {
	g := &Graph{}

	if isSubgraph {
		if p.tok.Kind != TokSubgraphKW {
			return nil, p.errorf("expected 'subgraph'")
		}
		p.lex()

		if p.tok.Kind == TokIdentifier {
			g.Name = p.tok.Text
			p.lex()
		}

		if p.tok.Kind != TokOpenBrace {
			return nil, p.errorf("expected '{'")
		}
		p.lex()

		stmts, err := p.parseStmtList()
		if err != nil {
			return nil, err
		}
		g.Stmts = stmts
		return g, nil
	}

	if p.tok.Kind == TokStrictKW {
		p.lex()
	}

	switch p.tok.Kind {
	case TokGraphKW, TokDigraphKW, TokSubgraphKW:
		p.lex()
	default:
		return nil, p.errorf("expected 'graph' or 'digraph'")
	}

	if p.tok.Kind == TokIdentifier {
		g.Name = p.tok.Text
		p.lex()
	}

	if p.tok.Kind != TokOpenBrace {
		return nil, p.errorf("expected '{'")
	}
	p.lex()

	stmts, err := p.parseStmtList()
	if err != nil {
		return nil, err
	}
	g.Stmts = stmts
	return g, nil
}

// parseStmtList : [ stmt [ ';' ] stmt_list ]
func (p *Parser) parseStmtList() ([]Stmt, error) {
	var stmts []Stmt
	for {
		if p.tok.Kind == TokSemicolon {
			p.lex()
		}
		if p.tok.Kind == TokCloseBrace {
			p.lex()
			return stmts, nil
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

// parseStmt : node_stmt | edge_stmt | attr_stmt | ID '=' ID | subgraph
func (p *Parser) parseStmt() (Stmt, error) {
	switch p.tok.Kind {
	case TokIdentifier:
		id, err := p.parseNodeID()
		if err != nil {
			return Stmt{}, err
		}
		switch p.tok.Kind {
		case TokArrowLine, TokArrowRight:
			es, err := p.parseEdgeStmt(id)
			if err != nil {
				return Stmt{}, err
			}
			return Stmt{Kind: StmtEdge, Edge: es}, nil
		case TokEqual:
			attr, err := p.parseAttributeStmt(id)
			if err != nil {
				return Stmt{}, err
			}
			return Stmt{Kind: StmtAttr, Attr: attr}, nil
		case TokIdentifier, TokSemicolon, TokCloseBrace:
			if p.tok.Kind == TokSemicolon {
				p.lex()
			}
			return Stmt{Kind: StmtNode, Node: NodeStmt{ID: id}}, nil
		case TokOpenBracket:
			list, err := p.parseAttrList()
			if err != nil {
				return Stmt{}, err
			}
			return Stmt{Kind: StmtNode, Node: NodeStmt{ID: id, List: list}}, nil
		default:
			return Stmt{}, p.errorf("unsupported token %v after node id", p.tok)
		}

	case TokSubgraphKW:
		g, err := p.parseGraph(true)
		if err != nil {
			return Stmt{}, err
		}
		return Stmt{Kind: StmtSubgraph, Subgraph: g}, nil

	// attr_stmt : (graph | node | edge) attr_list
	case TokGraphKW:
		p.lex()
		list, err := p.parseAttrList()
		if err != nil {
			return Stmt{}, err
		}
		return Stmt{Kind: StmtAttr, Attr: AttrStmt{Target: TargetGraph, List: list}}, nil
	case TokNodeKW:
		p.lex()
		list, err := p.parseAttrList()
		if err != nil {
			return Stmt{}, err
		}
		return Stmt{Kind: StmtAttr, Attr: AttrStmt{Target: TargetNode, List: list}}, nil
	case TokEdgeKW:
		p.lex()
		list, err := p.parseAttrList()
		if err != nil {
			return Stmt{}, err
		}
		return Stmt{Kind: StmtAttr, Attr: AttrStmt{Target: TargetEdge, List: list}}, nil

	case TokOpenBrace:
		p.lex()
		g := &Graph{Name: "anonymous"}
		stmts, err := p.parseStmtList()
		if err != nil {
			return Stmt{}, err
		}
		g.Stmts = stmts
		return Stmt{Kind: StmtSubgraph, Subgraph: g}, nil

	default:
		return Stmt{}, p.errorf("unknown token %v", p.tok)
	}
}

// parseAttrList : '[' [ a_list ] ']'
func (p *Parser) parseAttrList() (AttrList, error) {
	var list AttrList

	if p.tok.Kind != TokOpenBracket {
		return list, p.errorf("expected '['")
	}
	p.lex()

	for p.tok.Kind != TokCloseBracket {
		if p.tok.Kind != TokIdentifier {
			return list, p.errorf("expected property name")
		}
		prop := p.tok.Text
		p.lex()

		if p.tok.Kind != TokEqual {
			return list, p.errorf("expected '='")
		}
		p.lex()

		switch {
		case p.tok.Kind == TokHTMLStart && prop == "label":
			html, err := p.parseHTMLString()
			if err != nil {
				return list, err
			}
			list.addHTML(prop, html)
			if p.tok.Kind != TokHTMLEnd {
				return list, p.errorf("expected '>', found %v", p.tok)
			}
			p.lex()
		case p.tok.Kind == TokIdentifier:
			list.addString(prop, p.tok.Text)
			p.lex()
		default:
			return list, p.errorf("expected value after assignment, found %v", p.tok)
		}

		if p.tok.Kind == TokSemicolon {
			p.lex()
		}
		if p.tok.Kind == TokComma {
			p.lex()
		}
	}
	p.lex()
	return list, nil
}

func (p *Parser) parseHTMLString() (string, error) {
	p.lexHTML()
	if p.tok.Kind != TokIdentifier {
		return "", p.errorf("expected a string")
	}
	text := p.tok.Text
	p.lex()
	return text, nil
}

func (p *Parser) isEdgeToken() bool {
	return p.tok.Kind == TokArrowLine || p.tok.Kind == TokArrowRight
}

// parseAttributeStmt : ID '=' ID
func (p *Parser) parseAttributeStmt(id NodeID) (AttrStmt, error) {
	var list AttrList

	if id.Port != "" {
		return AttrStmt{}, p.errorf("can't assign into a port")
	}

	if p.tok.Kind != TokEqual {
		return AttrStmt{}, p.errorf("expected '='")
	}
	p.lex()

	if p.tok.Kind != TokIdentifier {
		return AttrStmt{}, p.errorf("expected identifier")
	}
	list.addString(id.Name, p.tok.Text)
	p.lex()

	return AttrStmt{Target: TargetGraph, List: list}, nil
}

// parseEdgeStmt : (node_id | subgraph) edgeRHS [ attr_list ]
func (p *Parser) parseEdgeStmt(from NodeID) (EdgeStmt, error) {
	es := EdgeStmt{From: from}

	for p.isEdgeToken() {
		var ak ArrowKind
		switch p.tok.Kind {
		case TokArrowLine:
			ak = ArrowUndirected
		case TokArrowRight:
			ak = ArrowDirected
		default:
			return es, p.errorf("expected '->' or '--'")
		}
		p.lex()

		id, err := p.parseNodeID()
		if err != nil {
			return es, err
		}
		es.Hops = append(es.Hops, EdgeHop{ID: id, Arrow: ak})
	}

	if p.tok.Kind == TokOpenBracket {
		list, err := p.parseAttrList()
		if err != nil {
			return es, err
		}
		es.List = list
	}

	return es, nil
}

// parseNodeID : ID [ ':' port ]
func (p *Parser) parseNodeID() (NodeID, error) {
	if p.tok.Kind != TokIdentifier {
		return NodeID{}, p.errorf("expected a node id")
	}
	name := p.tok.Text
	p.lex()

	if p.tok.Kind == TokColon {
		p.lex()
		if p.tok.Kind != TokIdentifier {
			return NodeID{}, p.errorf("expected a port name")
		}
		port := p.tok.Text
		p.lex()
		return NodeID{Name: name, Port: port}, nil
	}
	return NodeID{Name: name}, nil
}
