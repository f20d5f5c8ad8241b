package routing

import (
	"slices"
	"strings"
)

// Destination 팀에 등록된 수신 번호와 설명입니다.
type Destination struct {
	Number      string `json:"number"`
	Description string `json:"description"`
}

// Table 팀별 수신 번호 목록과 공급자 목록입니다.
type Table struct {
	Teams     map[Team][]Destination
	Providers []Provider
}

// NewTable 모든 팀이 빈 목록으로 초기화된 테이블을 생성합니다.
func NewTable() *Table {
	t := &Table{
		Teams:     make(map[Team][]Destination, len(Teams)),
		Providers: []Provider{},
	}
	for _, team := range Teams {
		t.Teams[team] = []Destination{}
	}
	return t
}

// AddNumber 팀에 번호를 추가하고 all 팀에도 같은 번호를 추가합니다.
// 이미 등록된 번호는 그 팀에서 건너뛰며 기존 설명을 유지합니다.
func (t *Table) AddNumber(team Team, dest Destination) error {
	if _, ok := ParseTeam(string(team)); !ok {
		return ErrUnknownTeam
	}

	dest.Number = strings.TrimSpace(dest.Number)
	dest.Description = strings.TrimSpace(dest.Description)
	if dest.Number == "" {
		return ErrEmptyNumber
	}
	// 라우팅 파일의 한 줄 형식(number | description)을 깨뜨리는 문자는 허용하지 않는다.
	if strings.ContainsAny(dest.Number, "|\r\n") || strings.ContainsAny(dest.Description, "\r\n") {
		return ErrInvalidDestination
	}

	t.appendIfAbsent(team, dest)
	t.appendIfAbsent(TeamAll, dest)

	return nil
}

func (t *Table) appendIfAbsent(team Team, dest Destination) {
	exists := slices.ContainsFunc(t.Teams[team], func(d Destination) bool {
		return d.Number == dest.Number
	})
	if !exists {
		t.Teams[team] = append(t.Teams[team], dest)
	}
}

// RemoveNumber 해당 팀에서만 번호를 삭제합니다. all 팀에 미러링된 항목은 유지됩니다.
func (t *Table) RemoveNumber(team Team, number string) error {
	if _, ok := ParseTeam(string(team)); !ok {
		return ErrUnknownTeam
	}

	before := len(t.Teams[team])
	t.Teams[team] = slices.DeleteFunc(t.Teams[team], func(d Destination) bool {
		return d.Number == number
	})
	if len(t.Teams[team]) == before {
		return ErrNumberNotFound
	}

	return nil
}

// AddProvider 동일한 공급자가 없으면 목록 끝에 추가하고 true를 반환합니다.
func (t *Table) AddProvider(p Provider) bool {
	if slices.ContainsFunc(t.Providers, p.Equal) {
		return false
	}
	t.Providers = append(t.Providers, p)
	return true
}

// RemoveProvider 0부터 시작하는 위치의 공급자를 삭제합니다.
func (t *Table) RemoveProvider(index int) error {
	if index < 0 || index >= len(t.Providers) {
		return ErrProviderNotFound
	}
	t.Providers = slices.Delete(t.Providers, index, index+1)
	return nil
}
