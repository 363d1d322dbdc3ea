// Command dynslice drives a Session against a replayed instrumentation
// trace and writes the resulting backward slice back to disk. It does not
// implement an interpreter for the target language (spec §1 Non-goals):
// the trace file stands in for the hook callbacks a real instrumented
// runtime would issue while executing the program once.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"

	"github.com/viant/dynslice/engine"
	"github.com/viant/dynslice/syntax"
)

// traceEvent is one line of the replayable hook-trace file: a flat union of
// every hook payload field, discriminated by Hook.
type traceEvent struct {
	Hook          string `json:"hook"`
	IID           int    `json:"iid"`
	Name          string `json:"name,omitempty"`
	IsLambda      bool   `json:"isLambda,omitempty"`
	TypeTag       string `json:"typeTag,omitempty"`
	IsBoundMethod bool   `json:"isBoundMethod,omitempty"`
}

func main() {
	source := flag.String("source", "", "path to the program to slice")
	trace := flag.String("trace", "", "path to the JSON hook-trace file")
	target := flag.String("function", "", "target function name")
	marker := flag.String("criterion", "slicing criterion", "slicing-criterion comment marker")
	selfName := flag.String("self", "self", "conventional receiver name")
	originalExt := flag.String("original-ext", ".orig", "extension for the preserved backup copy")
	scriptExt := flag.String("script-ext", ".py", "extension for the sliced output file")
	dump := flag.String("dump", "", "path to write a YAML dump of the dependence graph and keep-set (omit to skip)")
	flag.Parse()

	if *source == "" || *trace == "" || *target == "" {
		fmt.Println("usage: dynslice -source FILE -trace FILE -function NAME [-criterion MARKER] [-dump FILE]")
		os.Exit(2)
	}

	ctx := context.Background()
	if err := run(ctx, *source, *trace, *target, *marker, *selfName, *originalExt, *scriptExt, *dump); err != nil {
		fmt.Printf("dynslice: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, sourcePath, tracePath, target, marker, selfName, originalExt, scriptExt, dumpPath string) error {
	fs := afs.New()

	src, err := fs.DownloadWithURL(ctx, sourcePath)
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}
	traceData, err := fs.DownloadWithURL(ctx, tracePath)
	if err != nil {
		return fmt.Errorf("reading trace: %w", err)
	}
	var events []traceEvent
	if err := json.Unmarshal(traceData, &events); err != nil {
		return fmt.Errorf("parsing trace: %w", err)
	}

	facade, err := syntax.Parse(ctx, sourcePath, src)
	if err != nil {
		return err
	}
	session, err := engine.NewSession(facade,
		engine.WithTargetFunction(target),
		engine.WithCriterionMarker(marker),
		engine.WithSelfName(selfName),
		engine.WithExtensions(originalExt, scriptExt),
	)
	if err != nil {
		return err
	}

	result, err := replay(session, events)
	if err != nil {
		return err
	}

	rewriter := syntax.NewRewriter(facade)
	sliced := rewriter.Rewrite(session.Target(), result.KeepFunc())

	backupPath := sourcePath + session.Config().OriginalExt
	if err := fs.Upload(ctx, backupPath, 0644, strings.NewReader(string(src))); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}
	outputPath := stripExt(sourcePath) + session.Config().ScriptExt
	if err := fs.Upload(ctx, outputPath, 0644, strings.NewReader(string(sliced))); err != nil {
		return fmt.Errorf("writing sliced output: %w", err)
	}

	if dumpPath != "" {
		dumpData, err := session.DumpYAML(result)
		if err != nil {
			return fmt.Errorf("rendering dump: %w", err)
		}
		if err := fs.Upload(ctx, dumpPath, 0644, strings.NewReader(string(dumpData))); err != nil {
			return fmt.Errorf("writing dump: %w", err)
		}
	}

	fmt.Printf("sliced %s (criterion line %d, %d lines kept) -> %s\n", sourcePath, result.Criterion, len(result.Keep), outputPath)
	return nil
}

func replay(session *engine.Session, events []traceEvent) (*engine.Result, error) {
	for _, ev := range events {
		var err error
		switch ev.Hook {
		case "function_enter":
			err = session.OnFunctionEnter(engine.FunctionEnterEvent{IID: ev.IID, Name: ev.Name, IsLambda: ev.IsLambda})
		case "read":
			err = session.OnRead(engine.ReadEvent{IID: ev.IID})
		case "write":
			err = session.OnWrite(engine.WriteEvent{IID: ev.IID, TypeTag: ev.TypeTag})
		case "augmented_write":
			err = session.OnAugmentedWrite(engine.AugmentedWriteEvent{IID: ev.IID, TypeTag: ev.TypeTag})
		case "attribute_read":
			err = session.OnAttributeRead(engine.AttributeReadEvent{IID: ev.IID, IsBoundMethod: ev.IsBoundMethod})
		case "subscript_read":
			err = session.OnSubscriptRead(engine.SubscriptReadEvent{IID: ev.IID})
		case "enter_if":
			err = session.OnEnterIf(engine.ControlEvent{IID: ev.IID})
		case "exit_if":
			err = session.OnExitIf(engine.ControlEvent{IID: ev.IID})
		case "enter_for":
			err = session.OnEnterFor(engine.ControlEvent{IID: ev.IID})
		case "exit_for":
			err = session.OnExitFor(engine.ControlEvent{IID: ev.IID})
		case "enter_while":
			err = session.OnEnterWhile(engine.ControlEvent{IID: ev.IID})
		case "exit_while":
			err = session.OnExitWhile(engine.ControlEvent{IID: ev.IID})
		default:
			err = fmt.Errorf("unknown hook %q", ev.Hook)
		}
		if err != nil {
			return nil, err
		}
	}
	return session.OnEndExecution()
}

func stripExt(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext)
}
