package entity

// ActivityType tipo de actividad registrada por un docente.
type ActivityType string

const (
	ActivityPractice ActivityType = "PRACTICE"
	ActivitySeminar  ActivityType = "SEMINAR"
)

// Valid indica si t es un tipo conocido.
func (t ActivityType) Valid() bool {
	return t == ActivityPractice || t == ActivitySeminar
}

// Activity práctica o seminario de un docente. TeacherID referencia a un User
// con rol TEACHER; el almacenamiento no lo verifica, lo hace el servicio.
//
// El PDF de soporte (base64) no forma parte de la entidad: solo se usa para
// derivar ExtractedContent y no se persiste.
type Activity struct {
	ID               string       `json:"id"`
	TeacherID        string       `json:"teacherId"`
	Type             ActivityType `json:"type"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	FromDate         string       `json:"fromDate"` // YYYY-MM-DD
	ToDate           string       `json:"toDate"`   // YYYY-MM-DD
	FileName         string       `json:"fileName,omitempty"`
	ExtractedContent string       `json:"extractedContent,omitempty"`
	CreatedAt        int64        `json:"createdAt"` // epoch en milisegundos
}

// HasUpload indica si la actividad tiene un documento asociado.
func (a Activity) HasUpload() bool { return a.FileName != "" }
