package routing

// ResolveNumbers 팀의 수신 번호를 중복 없이 처음 등장한 순서대로 반환합니다.
// 알 수 없는 팀이면 빈 슬라이스를 반환합니다.
func ResolveNumbers(table *Table, team string) []string {
	numbers := []string{}

	t, ok := ParseTeam(team)
	if !ok || table == nil {
		return numbers
	}

	for _, d := range table.Teams[t] {
		numbers = append(numbers, d.Number)
	}

	return UniqueNumbers(numbers)
}

// UniqueNumbers 중복을 제거한 새 슬라이스를 반환합니다. 순서는 처음 등장한 순서를 따릅니다.
func UniqueNumbers(numbers []string) []string {
	seen := make(map[string]struct{}, len(numbers))
	unique := make([]string, 0, len(numbers))

	for _, n := range numbers {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		unique = append(unique, n)
	}

	return unique
}
