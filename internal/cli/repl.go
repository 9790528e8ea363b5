package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/variable-maker/server/internal/agent/graph"
	"github.com/variable-maker/server/internal/agent/model"
	logx "github.com/variable-maker/server/pkg/logger"
)

// REPL reads one input per line and feeds it to the naming graph. The thread
// id and the current case style live here for the whole session.
type REPL struct {
	runner    graph.Runner
	in        *bufio.Reader
	out       io.Writer
	threadID  string
	caseStyle model.CaseStyle
}

type Option func(*REPL)

// WithThreadID resumes an existing thread instead of starting a new one.
func WithThreadID(id string) Option {
	return func(r *REPL) {
		if id = strings.TrimSpace(id); id != "" {
			r.threadID = id
		}
	}
}

func WithCaseStyle(style model.CaseStyle) Option {
	return func(r *REPL) {
		if style.Valid() {
			r.caseStyle = style
		}
	}
}

func NewREPL(runner graph.Runner, in io.Reader, out io.Writer, opts ...Option) *REPL {
	r := &REPL{
		runner:    runner,
		in:        bufio.NewReader(in),
		out:       out,
		threadID:  "thread_" + uuid.NewString(),
		caseStyle: model.DefaultCaseStyle,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *REPL) ThreadID() string { return r.threadID }

func (r *REPL) CaseStyle() model.CaseStyle { return r.caseStyle }

// Run loops until ":quit", end of input or ctx cancellation.
func (r *REPL) Run(ctx context.Context) error {
	r.printBanner()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		promptStyle.Fprint(r.out, "\n입력> ")

		line, err := r.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := errors.Is(err, io.EOF)

		text := strings.TrimSpace(line)
		if text != "" {
			if quit := r.handle(ctx, text); quit {
				return nil
			}
		}
		if eof {
			r.println(mutedStyle, "")
			return nil
		}
	}
}

func (r *REPL) handle(ctx context.Context, text string) bool {
	res, err := r.runner.Invoke(ctx, model.QueryInput{
		ConversationID: r.threadID,
		Query:          text,
		CaseStyle:      r.caseStyle,
	})
	if err != nil {
		logx.Debug().Err(err).Str("conversation_id", r.threadID).Msg("REPL input failed")
		if res != nil {
			r.println(errorStyle, res.Response)
		} else {
			r.println(errorStyle, err.Error())
		}
		return false
	}

	if res.CaseStyle.Valid() {
		r.caseStyle = res.CaseStyle
	}
	r.println(resultStyle, res.Response)
	return res.Quit
}

func (r *REPL) printBanner() {
	r.println(headerStyle, "변수명 생성기")
	r.println(mutedStyle, "단어 또는 문장을 입력하세요. 명령어는 :help, 종료는 :quit")
	r.println(mutedStyle, "스레드: "+r.threadID+" / 케이스 스타일: "+r.caseStyle.String())
}

func (r *REPL) println(style *color.Color, s string) {
	_, _ = style.Fprintln(r.out, s)
}
