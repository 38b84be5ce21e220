package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterh/liner"
	"go.uber.org/zap"
)

// Run reads commands from the terminal until quit, Ctrl+C or Ctrl+D.
// Input history is kept in historyFile when it is not empty.
func (s *Session) Run(prompt, historyFile string) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(s.Complete)

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			if _, err := line.ReadHistory(f); err != nil {
				s.logger.Debug("read history", zap.Error(err))
			}
			f.Close()
		}
		defer s.saveHistory(line, historyFile)
	}

	for {
		input, err := line.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if err := s.Execute(input); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			s.ReportError(err)
		}
	}
}

func (s *Session) saveHistory(line *liner.State, historyFile string) {
	if err := os.MkdirAll(filepath.Dir(historyFile), 0o700); err != nil {
		s.logger.Debug("create history dir", zap.Error(err))
		return
	}
	f, err := os.OpenFile(historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		s.logger.Debug("open history", zap.Error(err))
		return
	}
	defer f.Close()
	if _, err := line.WriteHistory(f); err != nil {
		s.logger.Debug("write history", zap.Error(err))
	}
}

// Complete suggests command names for the first word and namespace names
// for the following ones.
func (s *Session) Complete(input string) []string {
	prefix := input
	head := ""
	if i := strings.LastIndexByte(input, ' '); i >= 0 {
		head, prefix = input[:i+1], input[i+1:]
	}

	var candidates []string
	if strings.TrimSpace(head) == "" {
		candidates = commandNames
	} else {
		for _, e := range s.ns.Items() {
			candidates = append(candidates, e.Name)
		}
	}

	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			out = append(out, head+c)
		}
	}
	sort.Strings(out)
	return out
}
