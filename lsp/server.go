// Package lsp serves ORCA input-file language features over the Language
// Server Protocol. It adapts the orca and assist packages onto glsp
// handlers; all protocol framing belongs to glsp.
package lsp

import (
	"strings"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/orcatools/orcals/assist"
	"github.com/orcatools/orcals/config"
	"github.com/orcatools/orcals/orca"
)

const lsName = "orcals"

var log = commonlog.GetLogger(lsName)

type Server struct {
	documents *documentStore
	cfg       *config.Config
	handler   protocol.Handler
	server    *server.Server
	version   string
}

func NewServer(version string, debug bool, cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.Default()
	}

	s := &Server{
		documents: newDocumentStore(),
		cfg:       cfg,
		version:   version,
	}

	s.handler = protocol.Handler{
		Initialize:             s.initialize,
		Initialized:            s.initialized,
		Shutdown:               s.shutdown,
		SetTrace:               s.setTrace,
		TextDocumentDidOpen:    s.textDocumentDidOpen,
		TextDocumentDidChange:  s.textDocumentDidChange,
		TextDocumentDidClose:   s.textDocumentDidClose,
		TextDocumentDidSave:    s.textDocumentDidSave,
		TextDocumentCompletion: s.textDocumentCompletion,
		TextDocumentHover:      s.textDocumentHover,
		TextDocumentCodeAction: s.textDocumentCodeAction,
	}

	s.server = server.NewServer(&s.handler, lsName, debug)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) RunTCP(address string) error {
	return s.server.RunTCP(address)
}

func (s *Server) RunWebSocket(address string) error {
	return s.server.RunWebSocket(address)
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    intPtr(int(protocol.TextDocumentSyncKindFull)),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	triggerChars := []string{"!", "%"}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: triggerChars,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("initialized, server version %s", s.version)
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.documents.update(params.TextDocument.URI, params.TextDocument.Text)
	log.Debugf("opened %s", doc.uri)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		doc := s.documents.update(params.TextDocument.URI, textChange.Text)
		s.publishDiagnostics(ctx, doc)
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.documents.remove(params.TextDocument.URI)
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text == nil {
		return nil
	}
	doc := s.documents.update(params.TextDocument.URI, *params.Text)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) publishDiagnostics(ctx *glsp.Context, doc *document) {
	diagnostics := make([]protocol.Diagnostic, 0)
	for _, f := range doc.result.Findings() {
		if s.cfg.Suppressed(f.Message) {
			continue
		}
		diagnostics = append(diagnostics, toProtocolDiagnostic(f))
	}

	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), doc.uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         doc.uri,
		Diagnostics: diagnostics,
	})
}

func (s *Server) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc := s.documents.get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	line, ok := doc.line(int(params.Position.Line))
	if !ok {
		return nil, nil
	}

	suggestions := assist.Complete(line, int(params.Position.Character))
	if len(suggestions) == 0 {
		return nil, nil
	}

	items := make([]protocol.CompletionItem, 0, len(suggestions))
	for _, sug := range suggestions {
		kind := toProtocolKind(sug.Kind)
		item := protocol.CompletionItem{
			Label: sug.Label,
			Kind:  &kind,
		}
		if sug.Detail != "" {
			detail := sug.Detail
			item.Detail = &detail
		}
		if sug.Doc != "" {
			item.Documentation = sug.Doc
		}
		if sug.Insert != "" {
			insertText := sug.Insert
			item.InsertText = &insertText
		}
		items = append(items, item)
	}

	log.Debugf("%d completions for %s:%d:%d", len(items), doc.uri, params.Position.Line, params.Position.Character)

	return items, nil
}

func (s *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.documents.get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	line, ok := doc.line(int(params.Position.Line))
	if !ok {
		return nil, nil
	}

	markdown, ok := assist.Hover(line, int(params.Position.Character))
	if !ok {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: markdown,
		},
	}, nil
}

func (s *Server) textDocumentCodeAction(ctx *glsp.Context, params *protocol.CodeActionParams) (any, error) {
	var actions []protocol.CodeAction
	for _, diag := range params.Context.Diagnostics {
		if !strings.Contains(diag.Message, "Missing %maxcore") {
			continue
		}
		kind := protocol.CodeActionKindQuickFix
		actions = append(actions, protocol.CodeAction{
			Title:       "Add %maxcore 4000",
			Kind:        &kind,
			Diagnostics: []protocol.Diagnostic{diag},
			Edit: &protocol.WorkspaceEdit{
				Changes: map[protocol.DocumentUri][]protocol.TextEdit{
					params.TextDocument.URI: {
						{
							Range: protocol.Range{
								Start: protocol.Position{Line: 1, Character: 0},
								End:   protocol.Position{Line: 1, Character: 0},
							},
							NewText: "%maxcore 4000\n",
						},
					},
				},
			},
		})
	}
	if len(actions) == 0 {
		return nil, nil
	}
	return actions, nil
}

func toProtocolDiagnostic(f orca.Finding) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	if f.Severity == orca.SeverityWarning {
		severity = protocol.DiagnosticSeverityWarning
	}
	source := lsName
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(f.Line), Character: 0},
			End:   protocol.Position{Line: protocol.UInteger(f.Line), Character: 100},
		},
		Severity: &severity,
		Source:   &source,
		Message:  f.Message,
	}
}

func toProtocolKind(kind assist.Kind) protocol.CompletionItemKind {
	switch kind {
	case assist.KindBlock:
		return protocol.CompletionItemKindKeyword
	case assist.KindValue:
		return protocol.CompletionItemKindValue
	case assist.KindProperty:
		return protocol.CompletionItemKindProperty
	case assist.KindFunctional:
		return protocol.CompletionItemKindFunction
	case assist.KindWavefunction:
		return protocol.CompletionItemKindMethod
	case assist.KindBasisSet:
		return protocol.CompletionItemKindClass
	case assist.KindJobType:
		return protocol.CompletionItemKindEvent
	case assist.KindElement:
		return protocol.CompletionItemKindEnumMember
	default:
		return protocol.CompletionItemKindText
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *protocol.TextDocumentSyncKind {
	v := protocol.TextDocumentSyncKind(i)
	return &v
}
