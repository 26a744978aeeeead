package form

import "fmt"

// Field names shared by the variants.
const (
	FieldName        = "name"
	FieldSurname     = "sobrenome"
	FieldInstitution = "instituicao"
	FieldSubject     = "disciplina"
)

// usernameMaxLength matches the users.username column.
const usernameMaxLength = 64

// Variant is one deployment flavour of the intake page.
type Variant struct {
	Key               string
	Title             string
	Template          string
	Schema            Schema
	NameChangedNotice string
	ShowElapsed       bool
	ShowRequestInfo   bool
}

// Greeting asks for a name only.
var Greeting = Variant{
	Key:      "greeting",
	Title:    "Visitor book",
	Template: "greeting.html",
	Schema: Schema{
		{Name: FieldName, Label: "What is your name?", Kind: KindText, Required: true, MaxLength: usernameMaxLength},
	},
	NameChangedNotice: "Looks like you have changed your name!",
}

// Enrollment asks for name, surname, institution and subject and shows how
// long ago the session started.
var Enrollment = Variant{
	Key:      "enrollment",
	Title:    "Cadastro de alunos",
	Template: "enrollment.html",
	Schema: Schema{
		{Name: FieldName, Label: "Informe o seu nome:", Kind: KindText, Required: true, MaxLength: usernameMaxLength},
		{Name: FieldSurname, Label: "Informe o seu sobrenome:", Kind: KindText, Required: true},
		{Name: FieldInstitution, Label: "Informe a sua Instituição de ensino:", Kind: KindText, Required: true},
		{Name: FieldSubject, Label: "Informe a sua disciplina:", Kind: KindChoice, Required: true, Choices: []string{"DSWA5"}},
	},
	NameChangedNotice: "Parece que você alterou seu nome!",
	ShowElapsed:       true,
	ShowRequestInfo:   true,
}

// LookupVariant returns the variant registered under key.
func LookupVariant(key string) (Variant, error) {
	switch key {
	case Greeting.Key:
		return Greeting, nil
	case Enrollment.Key:
		return Enrollment, nil
	default:
		return Variant{}, fmt.Errorf("unknown variant %q", key)
	}
}
