package constants

// Session / subscription subsystem discriminators used in URLs and payloads.
const (
	TypeQuran       = "quran"
	TypeAcademic    = "academic"
	TypeInteractive = "interactive"
	TypeCourse      = "course" // subscription alias for the interactive subsystem
)

var SessionTypes = []string{TypeQuran, TypeAcademic, TypeInteractive}

func IsSessionType(s string) bool {
	return s == TypeQuran || s == TypeAcademic || s == TypeInteractive
}

// Relationship types a parent may hold toward a student.
const (
	RelationshipFather   = "father"
	RelationshipMother   = "mother"
	RelationshipGuardian = "guardian"
	RelationshipOther    = "other"
)

var RelationshipTypes = []string{
	RelationshipFather,
	RelationshipMother,
	RelationshipGuardian,
	RelationshipOther,
}
