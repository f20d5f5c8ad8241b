package routing

// Team 알림 수신 그룹의 식별자입니다. Teams에 정의된 고정 집합 외의 값은 존재하지 않습니다.
type Team string

const (
	TeamAll      Team = "all"
	TeamDevOps   Team = "devops"
	TeamCloud    Team = "cloud"
	TeamWeb      Team = "web"
	TeamNOC      Team = "noc"
	TeamManagers Team = "managers"
)

// Teams 라우팅 파일에 기록되는 순서대로 나열한 전체 팀 목록입니다.
var Teams = []Team{TeamAll, TeamDevOps, TeamCloud, TeamWeb, TeamNOC, TeamManagers}

// ParseTeam 문자열을 Team으로 변환합니다. 대소문자를 구분하며 알 수 없는 이름이면 false를 반환합니다.
func ParseTeam(s string) (Team, bool) {
	for _, t := range Teams {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

func (t Team) String() string {
	return string(t)
}
