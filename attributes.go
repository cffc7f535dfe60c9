package html

// The attribute catalog.  Free text attributes are printf style and formatted eagerly at
// construction; without arguments the format string is used verbatim.  Enumerated attributes
// take closed types whose values are declared here, so an invalid literal does not compile.
// Boolean attributes take a condition and collapse to NullAttr when it is false.  Attribute
// constructors whose names collide with an element constructor carry an Attr suffix; the
// element keeps the plain name.

// Global attributes.

func Class(format string, args ...any) Attr       { return attr(`class`, format, args) }
func ID(format string, args ...any) Attr          { return attr(`id`, format, args) }
func Lang(format string, args ...any) Attr        { return attr(`lang`, format, args) }
func Role(format string, args ...any) Attr        { return attr(`role`, format, args) }
func AccessKey(format string, args ...any) Attr   { return attr(`accesskey`, format, args) }
func TabIndex(format string, args ...any) Attr    { return attr(`tabindex`, format, args) }
func TitleAttr(format string, args ...any) Attr   { return attr(`title`, format, args) }
func StyleAttr(format string, args ...any) Attr   { return attr(`style`, format, args) }
func SlotAttr(format string, args ...any) Attr    { return attr(`slot`, format, args) }
func ContentEditable(editable bool) Attr          { return pair(`contenteditable`, boolWord(editable)) }
func Draggable(draggable bool) Attr               { return pair(`draggable`, boolWord(draggable)) }

// Aria constructs an aria-* attribute.  The name suffix is part of the fixed ARIA vocabulary
// and must not come from user input; only the value is escaped.
func Aria(name, format string, args ...any) Attr { return attr(`aria-`+name, format, args) }

// Data constructs a data-* attribute.  The same naming rules as Aria apply.
func Data(name, format string, args ...any) Attr { return attr(`data-`+name, format, args) }

// Links, media and references.

func Href(format string, args ...any) Attr      { return attr(`href`, format, args) }
func Src(format string, args ...any) Attr       { return attr(`src`, format, args) }
func SrcSet(format string, args ...any) Attr    { return attr(`srcset`, format, args) }
func Alt(format string, args ...any) Attr       { return attr(`alt`, format, args) }
func Width(format string, args ...any) Attr     { return attr(`width`, format, args) }
func Height(format string, args ...any) Attr    { return attr(`height`, format, args) }
func Rel(format string, args ...any) Attr       { return attr(`rel`, format, args) }
func Target(format string, args ...any) Attr    { return attr(`target`, format, args) }
func Download(format string, args ...any) Attr  { return attr(`download`, format, args) }
func Media(format string, args ...any) Attr     { return attr(`media`, format, args) }
func Sizes(format string, args ...any) Attr     { return attr(`sizes`, format, args) }
func Poster(format string, args ...any) Attr    { return attr(`poster`, format, args) }
func Coords(format string, args ...any) Attr    { return attr(`coords`, format, args) }
func Integrity(format string, args ...any) Attr { return attr(`integrity`, format, args) }
func CiteAttr(format string, args ...any) Attr  { return attr(`cite`, format, args) }
func DateTime(format string, args ...any) Attr  { return attr(`datetime`, format, args) }

// Document metadata.

func Charset(format string, args ...any) Attr { return attr(`charset`, format, args) }
func Content(format string, args ...any) Attr { return attr(`content`, format, args) }

// Forms.

func Action(format string, args ...any) Attr      { return attr(`action`, format, args) }
func Name(format string, args ...any) Attr        { return attr(`name`, format, args) }
func Value(format string, args ...any) Attr       { return attr(`value`, format, args) }
func Type(format string, args ...any) Attr        { return attr(`type`, format, args) }
func Placeholder(format string, args ...any) Attr { return attr(`placeholder`, format, args) }
func Pattern(format string, args ...any) Attr     { return attr(`pattern`, format, args) }
func For(format string, args ...any) Attr         { return attr(`for`, format, args) }
func FormAttr(format string, args ...any) Attr    { return attr(`form`, format, args) }
func LabelAttr(format string, args ...any) Attr   { return attr(`label`, format, args) }
func List(format string, args ...any) Attr        { return attr(`list`, format, args) }
func Accept(format string, args ...any) Attr      { return attr(`accept`, format, args) }
func EncType(format string, args ...any) Attr     { return attr(`enctype`, format, args) }
func Min(format string, args ...any) Attr         { return attr(`min`, format, args) }
func Max(format string, args ...any) Attr         { return attr(`max`, format, args) }
func MinLength(format string, args ...any) Attr   { return attr(`minlength`, format, args) }
func MaxLength(format string, args ...any) Attr   { return attr(`maxlength`, format, args) }
func Step(format string, args ...any) Attr        { return attr(`step`, format, args) }
func Rows(format string, args ...any) Attr        { return attr(`rows`, format, args) }
func Cols(format string, args ...any) Attr        { return attr(`cols`, format, args) }
func Size(format string, args ...any) Attr        { return attr(`size`, format, args) }

// Tables.

func SpanAttr(format string, args ...any) Attr { return attr(`span`, format, args) }
func ColSpan(format string, args ...any) Attr  { return attr(`colspan`, format, args) }
func RowSpan(format string, args ...any) Attr  { return attr(`rowspan`, format, args) }

// Lists and frames.

func Start(format string, args ...any) Attr   { return attr(`start`, format, args) }
func Sandbox(format string, args ...any) Attr { return attr(`sandbox`, format, args) }

// Enumerated attributes.  The value types are closed: their only inhabitants are the variables
// declared below, so a misspelled literal is a compile error, not a runtime surprise.

// A FormMethod is the submission method of a form.  The zero value is GET, the HTML default.
type FormMethod struct{ v string }

var (
	GET          = FormMethod{`get`}
	POST         = FormMethod{`post`}
	DialogMethod = FormMethod{`dialog`}
)

// Method sets the form submission method.
func Method(m FormMethod) Attr {
	if m.v == `` {
		m = GET
	}
	return pair(`method`, m.v)
}

// A TextDirection is the directionality of text.  The zero value is "auto".
type TextDirection struct{ v string }

var (
	LTR     = TextDirection{`ltr`}
	RTL     = TextDirection{`rtl`}
	AutoDir = TextDirection{`auto`}
)

// Dir sets the text direction of an element.
func Dir(d TextDirection) Attr {
	if d.v == `` {
		d = AutoDir
	}
	return pair(`dir`, d.v)
}

// A CrossOriginPolicy controls the CORS mode of a fetch.  The zero value is "anonymous".
type CrossOriginPolicy struct{ v string }

var (
	Anonymous      = CrossOriginPolicy{`anonymous`}
	UseCredentials = CrossOriginPolicy{`use-credentials`}
)

// CrossOrigin sets the CORS mode for elements that fetch, such as script and link tags.
func CrossOrigin(p CrossOriginPolicy) Attr {
	if p.v == `` {
		p = Anonymous
	}
	return pair(`crossorigin`, p.v)
}

// A Referrer is a referrer policy.  The zero value is "no-referrer".
type Referrer struct{ v string }

var (
	NoReferrer              = Referrer{`no-referrer`}
	NoReferrerWhenDowngrade = Referrer{`no-referrer-when-downgrade`}
	SameOriginReferrer      = Referrer{`same-origin`}
	StrictOriginReferrer    = Referrer{`strict-origin`}
)

// ReferrerPolicy sets the referrer policy for a link, script or image.
func ReferrerPolicy(r Referrer) Attr {
	if r.v == `` {
		r = NoReferrer
	}
	return pair(`referrerpolicy`, r.v)
}

// A WrapMode controls how textarea content wraps on submission.  The zero value is "soft".
type WrapMode struct{ v string }

var (
	SoftWrap = WrapMode{`soft`}
	HardWrap = WrapMode{`hard`}
)

// Wrap sets the wrap mode of a textarea.
func Wrap(m WrapMode) Attr {
	if m.v == `` {
		m = SoftWrap
	}
	return pair(`wrap`, m.v)
}

// An InputKind is the type of an input element.  The zero value is "text", the HTML default.
// The free text Type constructor remains for attributes whose domain is open, like MIME types
// on script and link tags.
type InputKind struct{ v string }

var (
	TextInput          = InputKind{`text`}
	HiddenInput        = InputKind{`hidden`}
	PasswordInput      = InputKind{`password`}
	CheckboxInput      = InputKind{`checkbox`}
	RadioInput         = InputKind{`radio`}
	SubmitInput        = InputKind{`submit`}
	ResetInput         = InputKind{`reset`}
	ButtonInput        = InputKind{`button`}
	FileInput          = InputKind{`file`}
	ImageInput         = InputKind{`image`}
	EmailInput         = InputKind{`email`}
	TelInput           = InputKind{`tel`}
	URLInput           = InputKind{`url`}
	SearchInput        = InputKind{`search`}
	NumberInput        = InputKind{`number`}
	RangeInput         = InputKind{`range`}
	ColorInput         = InputKind{`color`}
	DateInput          = InputKind{`date`}
	TimeInput          = InputKind{`time`}
	WeekInput          = InputKind{`week`}
	MonthInput         = InputKind{`month`}
	DatetimeLocalInput = InputKind{`datetime-local`}
)

// InputType sets the type of an input element from the closed set of input kinds.
func InputType(k InputKind) Attr {
	if k.v == `` {
		k = TextInput
	}
	return pair(`type`, k.v)
}

// AutoComplete toggles form autofill between the "on" and "off" tokens.
func AutoComplete(on bool) Attr {
	if on {
		return pair(`autocomplete`, `on`)
	}
	return pair(`autocomplete`, `off`)
}

// Boolean attributes.  Each takes a condition: when it is false the attribute is NullAttr and
// renders nothing at all, so a call site can keep a fixed attribute list shape and let the
// condition decide.

func Async(when bool) Attr       { return flag(`async`, when) }
func Autofocus(when bool) Attr   { return flag(`autofocus`, when) }
func Autoplay(when bool) Attr    { return flag(`autoplay`, when) }
func Checked(when bool) Attr     { return flag(`checked`, when) }
func Controls(when bool) Attr    { return flag(`controls`, when) }
func Default(when bool) Attr     { return flag(`default`, when) }
func Defer(when bool) Attr       { return flag(`defer`, when) }
func Disabled(when bool) Attr    { return flag(`disabled`, when) }
func Hidden(when bool) Attr      { return flag(`hidden`, when) }
func Loop(when bool) Attr        { return flag(`loop`, when) }
func Multiple(when bool) Attr    { return flag(`multiple`, when) }
func Muted(when bool) Attr       { return flag(`muted`, when) }
func NoValidate(when bool) Attr  { return flag(`novalidate`, when) }
func Open(when bool) Attr        { return flag(`open`, when) }
func PlaysInline(when bool) Attr { return flag(`playsinline`, when) }
func ReadOnly(when bool) Attr    { return flag(`readonly`, when) }
func Required(when bool) Attr    { return flag(`required`, when) }
func Reversed(when bool) Attr    { return flag(`reversed`, when) }
func Selected(when bool) Attr    { return flag(`selected`, when) }

func boolWord(b bool) string {
	if b {
		return `true`
	}
	return `false`
}
