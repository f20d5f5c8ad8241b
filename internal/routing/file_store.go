package routing

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	apperrors "github.com/darkkaiser/alert-relay/internal/pkg/errors"
	"github.com/darkkaiser/alert-relay/internal/storage"
	applog "github.com/darkkaiser/alert-relay/pkg/log"
	"github.com/darkkaiser/alert-relay/pkg/validation"
)

const component = "routing.store"

// providerSection 공급자 목록이 기록되는 섹션 이름입니다.
const providerSection = "sms_provider"

// FileStore numbers.txt 형식의 파일에 라우팅 테이블을 저장합니다.
//
//	[all]
//	+821012345678 | 당직자
//	+821087654321
//
//	[devops]
//
//	[sms_provider]
//	https://api.example.com/v1/KEY/sms/send.json
//	{"headers":{"X-Token":"t"},"url":"https://chat.example.com/hooks/abc"}
//
// 같은 프로세스 안에서의 접근은 뮤텍스로 직렬화됩니다.
type FileStore struct {
	path string

	mu sync.Mutex
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ Store = (*FileStore)(nil)

// NewFileStore 지정된 경로의 파일을 사용하는 저장소를 생성합니다. 파일은 최초 Load 시점에 생성됩니다.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *FileStore) Save(ctx context.Context, table *Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(table)
}

func (s *FileStore) Update(ctx context.Context, fn func(*Table) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.load()
	if err != nil {
		return err
	}

	if err := fn(table); err != nil {
		return err
	}

	return s.save(table)
}

// Check 파일이 아직 없으면 생성될 디렉터리가 있는지만 확인하고, 있으면 읽어서 해석해 봅니다.
// Load와 달리 파일을 만들지 않습니다.
func (s *FileStore) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return storage.NewErrFileReadFailed(err, s.path)
		}
		if err := validation.ValidateParentDir(s.path); err != nil {
			return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("라우팅 파일을 생성할 수 없습니다: %s", s.path))
		}
		return nil
	}

	_, err = parseTable(data, s.path)
	return err
}

func (s *FileStore) load() (*Table, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, storage.NewErrFileReadFailed(err, s.path)
		}

		// 최초 실행: 모든 섹션이 비어 있는 파일을 만들어 둔다.
		table := NewTable()
		if err := s.save(table); err != nil {
			return nil, err
		}

		applog.WithComponentAndFields(component, applog.Fields{
			"path": s.path,
		}).Info("라우팅 파일이 없어 빈 파일을 생성하였습니다")

		return table, nil
	}

	return parseTable(data, s.path)
}

func (s *FileStore) save(table *Table) error {
	data, err := formatTable(table)
	if err != nil {
		return err
	}
	return storage.WriteFileAtomic(s.path, data, 0644)
}

// parseTable 라우팅 파일 내용을 해석합니다.
// 알 수 없는 섹션과 섹션 밖의 줄은 무시하며, 파일 형식 오류로 취급하지 않습니다.
func parseTable(data []byte, path string) (*Table, error) {
	table := NewTable()

	var (
		current      string
		ignoredLines int
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section := strings.TrimSpace(line[1 : len(line)-1])
			if _, ok := ParseTeam(section); ok || section == providerSection {
				current = section
				continue
			}

			current = ""
			applog.WithComponentAndFields(component, applog.Fields{
				"path":    path,
				"section": section,
			}).Warn("알 수 없는 섹션입니다. 해당 섹션의 항목은 무시됩니다")

			continue
		}

		switch {
		case current == providerSection:
			table.Providers = append(table.Providers, parseProviderLine(line))

		case current != "":
			number, desc, _ := strings.Cut(line, "|")
			number = strings.TrimSpace(number)
			if number == "" {
				ignoredLines++
				continue
			}

			team := Team(current)
			table.Teams[team] = append(table.Teams[team], Destination{
				Number:      number,
				Description: strings.TrimSpace(desc),
			})

		default:
			ignoredLines++
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ParsingFailed, fmt.Sprintf("라우팅 파일을 해석할 수 없습니다: %s", path))
	}

	if ignoredLines > 0 {
		applog.WithComponentAndFields(component, applog.Fields{
			"path":          path,
			"ignored_lines": ignoredLines,
		}).Warn("해석할 수 없는 줄을 무시하였습니다")
	}

	return table, nil
}

// formatTable 팀은 Teams 순서대로, 공급자는 목록 순서대로 기록합니다.
func formatTable(table *Table) ([]byte, error) {
	var buf bytes.Buffer

	for _, team := range Teams {
		buf.WriteString("[" + string(team) + "]\n")
		for _, d := range table.Teams[team] {
			if d.Description != "" {
				buf.WriteString(d.Number + " | " + d.Description + "\n")
			} else {
				buf.WriteString(d.Number + "\n")
			}
		}
		buf.WriteString("\n")
	}

	buf.WriteString("[" + providerSection + "]\n")
	for _, p := range table.Providers {
		line, err := formatProviderLine(p)
		if err != nil {
			return nil, err
		}
		buf.WriteString(line + "\n")
	}

	return buf.Bytes(), nil
}
