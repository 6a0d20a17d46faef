package dot

import (
	"fmt"
	"io"
	"strings"
)

// DumpAST writes a human-readable indented tree of g to w, the Go
// equivalent of the reference printer's dump_ast: handy for a CLI's
// --ast flag, not used by the parser or builder themselves.
func DumpAST(w io.Writer, g *Graph) {
	dumpGraph(w, g, 0)
}

func dumpGraph(w io.Writer, g *Graph, indent int) {
	fmt.Fprintf(w, "%sGraph: %s\n", pad(indent), g.Name)
	for _, stmt := range g.Stmts {
		dumpStmt(w, &stmt, indent+1)
	}
}

func dumpStmt(w io.Writer, stmt *Stmt, indent int) {
	switch stmt.Kind {
	case StmtEdge:
		dumpEdge(w, &stmt.Edge, indent)
	case StmtNode:
		dumpNode(w, &stmt.Node, indent)
	case StmtAttr:
		dumpAttr(w, &stmt.Attr, indent)
	case StmtSubgraph:
		dumpGraph(w, stmt.Subgraph, indent)
	}
}

func dumpNodeID(w io.Writer, id NodeID, indent int) {
	if id.Port != "" {
		fmt.Fprintf(w, "%s%s:%s\n", pad(indent), id.Name, id.Port)
		return
	}
	fmt.Fprintf(w, "%s%s\n", pad(indent), id.Name)
}

func dumpArrow(w io.Writer, k ArrowKind, indent int) {
	if k == ArrowUndirected {
		fmt.Fprintf(w, "%s--\n", pad(indent))
		return
	}
	fmt.Fprintf(w, "%s->\n", pad(indent))
}

func dumpAttrList(w io.Writer, list AttrList, indent int) {
	for i, e := range list.Entries {
		fmt.Fprintf(w, "%s%d)\"%s\" = \"%s\"\n", pad(indent), i, e.Key, e.Value.Text)
	}
}

func dumpEdge(w io.Writer, e *EdgeStmt, indent int) {
	dumpNodeID(w, e.From, indent+1)
	for _, hop := range e.Hops {
		dumpArrow(w, hop.Arrow, indent+1)
		dumpNodeID(w, hop.ID, indent+1)
	}
	dumpAttrList(w, e.List, indent+1)
}

func dumpNode(w io.Writer, n *NodeStmt, indent int) {
	fmt.Fprintf(w, "Node %s", pad(indent))
	dumpNodeID(w, n.ID, indent+1)
	dumpAttrList(w, n.List, indent+1)
}

func dumpAttr(w io.Writer, a *AttrStmt, indent int) {
	switch a.Target {
	case TargetGraph:
		fmt.Fprintf(w, "%sAttribute Graph:\n", pad(indent))
	case TargetNode:
		fmt.Fprintf(w, "%sAttribute Node:\n", pad(indent))
	case TargetEdge:
		fmt.Fprintf(w, "%sAttribute Edge:\n", pad(indent))
	}
	dumpAttrList(w, a.List, indent+1)
}

func pad(indent int) string {
	return strings.Repeat(" ", indent)
}
