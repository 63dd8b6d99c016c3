package domain

// IdeaStatus is the review state of an idea. Values are stored verbatim.
type IdeaStatus string

const (
	IdeaStatusPending  IdeaStatus = "Em Análise"
	IdeaStatusApproved IdeaStatus = "Aprovada"
	IdeaStatusRejected IdeaStatus = "Reprovada"
)

func (s IdeaStatus) String() string { return string(s) }

func (s IdeaStatus) IsValid() bool {
	switch s {
	case IdeaStatusPending, IdeaStatusApproved, IdeaStatusRejected:
		return true
	}
	return false
}

// Category is the sustainability domain an idea belongs to.
type Category string

const (
	CategoryWater        Category = "water"
	CategoryEnergy       Category = "energy"
	CategoryWaste        Category = "waste"
	CategoryTransport    Category = "transport"
	CategoryMaterials    Category = "materials"
	CategoryBiodiversity Category = "biodiversity"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryWater, CategoryEnergy, CategoryWaste,
	CategoryTransport, CategoryMaterials, CategoryBiodiversity,
}

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryWater, CategoryEnergy, CategoryWaste, CategoryTransport, CategoryMaterials, CategoryBiodiversity:
		return true
	}
	return false
}

// Label returns the Portuguese display name.
func (c Category) Label() string {
	switch c {
	case CategoryWater:
		return "Conservação de Água"
	case CategoryEnergy:
		return "Eficiência Energética"
	case CategoryWaste:
		return "Redução de Resíduos"
	case CategoryTransport:
		return "Transporte Sustentável"
	case CategoryMaterials:
		return "Materiais Sustentáveis"
	case CategoryBiodiversity:
		return "Biodiversidade"
	}
	return string(c)
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	return r == UserRoleUser || r == UserRoleAdmin
}

func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// ActionType identifies what an activity entry records.
type ActionType string

const (
	ActionIdeaCreated       ActionType = "idea_created"
	ActionIdeaApproved      ActionType = "idea_approved"
	ActionIdeaRejected      ActionType = "idea_rejected"
	ActionIdeaStatusChanged ActionType = "idea_status_changed"
	ActionIdeaImplemented   ActionType = "idea_implemented"
)

func (a ActionType) String() string { return string(a) }

// EntityType identifies the kind of entity an activity refers to.
type EntityType string

const (
	EntityTypeIdea EntityType = "idea"
	EntityTypeUser EntityType = "user"
)

func (e EntityType) String() string { return string(e) }
