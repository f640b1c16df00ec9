package conversation

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification es el aviso transitorio que ve el usuario.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

// Notifier muestra avisos al usuario.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapta una funcion a Notifier.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

type nopNotifier struct{}

func (nopNotifier) Notify(Notification) {}
