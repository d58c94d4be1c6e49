package i18n

// Message keys. Validation keys are produced by the domain form validators.
const (
	KeyProjectNameRequired        = "project.name.required"
	KeyProjectDescriptionRequired = "project.description.required"
	KeyProjectStartDateRequired   = "project.start_date.required"
	KeyProjectDateInvalid         = "project.date.invalid"
	KeyProjectEndBeforeStart      = "project.end_date.before_start"
	KeyProjectCreatorsInvalid     = "project.creators.invalid"
	KeyProjectMinExceedsMax       = "project.creators.min_exceeds_max"
	KeyProjectStatusInvalid       = "project.status.invalid"
	KeyProjectNotFound            = "project.not_found"
	KeyProjectCreated             = "project.created"
	KeyCreatorNotFound            = "creator.not_found"
	KeyCreatorIDsRequired         = "creator.ids.required"

	KeyLoginEmailRequired    = "login.email.required"
	KeyLoginPasswordRequired = "login.password.required"
	KeyLoginRoleInvalid      = "login.role.invalid"
	KeyInvalidCredentials    = "login.invalid_credentials"

	KeyAuthRequired  = "auth.required"
	KeyAuthForbidden = "auth.forbidden"

	KeyInvalidBody = "request.invalid_body"
)

type translation struct {
	es string
	en string
}

var translations = map[string]translation{
	KeyProjectNameRequired:        {"El nombre del proyecto es obligatorio", "Project name is required"},
	KeyProjectDescriptionRequired: {"La descripción es obligatoria", "Description is required"},
	KeyProjectStartDateRequired:   {"La fecha de inicio es obligatoria", "Start date is required"},
	KeyProjectDateInvalid:         {"La fecha debe tener el formato AAAA-MM-DD", "Dates must use the YYYY-MM-DD format"},
	KeyProjectEndBeforeStart:      {"La fecha de fin no puede ser anterior a la de inicio", "End date cannot be before the start date"},
	KeyProjectCreatorsInvalid:     {"Debe ser un número entero no negativo", "Must be a non-negative whole number"},
	KeyProjectMinExceedsMax:       {"El mínimo de creadores no puede superar el máximo", "Minimum creators cannot exceed the maximum"},
	KeyProjectStatusInvalid:       {"Estado de proyecto no válido", "Invalid project status"},
	KeyProjectNotFound:            {"Proyecto no encontrado", "Project not found"},
	KeyProjectCreated:             {"Proyecto creado correctamente", "Project created successfully"},
	KeyCreatorNotFound:            {"Creador no encontrado", "Creator not found"},
	KeyCreatorIDsRequired:         {"Selecciona al menos un creador", "Select at least one creator"},

	KeyLoginEmailRequired:    {"El email es obligatorio", "Email is required"},
	KeyLoginPasswordRequired: {"La contraseña es obligatoria", "Password is required"},
	KeyLoginRoleInvalid:      {"Tipo de usuario no válido", "Invalid user type"},
	KeyInvalidCredentials:    {"Credenciales inválidas", "Invalid credentials"},

	KeyAuthRequired:  {"Debes iniciar sesión", "You need to log in"},
	KeyAuthForbidden: {"No tienes acceso a esta sección", "You do not have access to this section"},

	KeyInvalidBody: {"Solicitud no válida", "Invalid request"},

	"status.active":    {"Activo", "Active"},
	"status.paused":    {"Pausado", "Paused"},
	"status.completed": {"Completado", "Completed"},
	"status.draft":     {"Borrador", "Draft"},

	"relation.negotiating": {"En negociación", "Negotiating"},
	"relation.hired":       {"Contratado", "Hired"},
	"relation.completed":   {"Finalizado", "Completed"},
	"relation.rejected":    {"Rechazado", "Rejected"},

	"role.marca":   {"Marca", "Brand"},
	"role.creador": {"Creador", "Creator"},

	"nav.home":           {"Inicio", "Home"},
	"nav.explore":        {"Explora", "Explore"},
	"nav.what_is_ugc":    {"¿Qué es UGC?", "What is UGC?"},
	"nav.dashboard":      {"Mi perfil (Dashboard)", "My profile (Dashboard)"},
	"nav.create_project": {"Crear proyecto", "Create project"},
	"nav.projects":       {"Mis proyectos", "My projects"},
	"nav.proposals":      {"Propuestas", "Proposals"},
	"nav.favorites":      {"Favoritos", "Favorites"},
	"nav.payments":       {"Mis pagos", "My payments"},
	"nav.login":          {"Iniciar sesión", "Log in"},
	"nav.register":       {"Crear cuenta", "Sign up"},
	"nav.logout":         {"Cerrar sesión", "Log out"},
}

// labelKeys is the set served by the label switch endpoint.
var labelKeys = []string{
	"status.active", "status.paused", "status.completed", "status.draft",
	"relation.negotiating", "relation.hired", "relation.completed", "relation.rejected",
	"role.marca", "role.creador",
	"nav.home", "nav.explore", "nav.what_is_ugc", "nav.dashboard", "nav.create_project",
	"nav.projects", "nav.proposals", "nav.favorites", "nav.payments",
	"nav.login", "nav.register", "nav.logout",
}
