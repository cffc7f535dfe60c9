package html

// The element catalog.  One constructor per HTML element, split by shape: normal elements take
// an attribute list and children, void elements take only attributes -- the children parameter
// does not exist, so a void element with content is not constructible.  Script and style are
// deliberately absent here; their content is raw text under HTML5 and they are covered by the
// Script and Style types in html.go.

// Document structure.

func Html(attrs []Attr, children ...Node) Node  { return newElement(`html`, attrs, children) }
func Head(attrs []Attr, children ...Node) Node  { return newElement(`head`, attrs, children) }
func Title(attrs []Attr, children ...Node) Node { return newElement(`title`, attrs, children) }
func Body(attrs []Attr, children ...Node) Node  { return newElement(`body`, attrs, children) }

// Sectioning.

func Header(attrs []Attr, children ...Node) Node  { return newElement(`header`, attrs, children) }
func Footer(attrs []Attr, children ...Node) Node  { return newElement(`footer`, attrs, children) }
func Main(attrs []Attr, children ...Node) Node    { return newElement(`main`, attrs, children) }
func Nav(attrs []Attr, children ...Node) Node     { return newElement(`nav`, attrs, children) }
func Section(attrs []Attr, children ...Node) Node { return newElement(`section`, attrs, children) }
func Article(attrs []Attr, children ...Node) Node { return newElement(`article`, attrs, children) }
func Aside(attrs []Attr, children ...Node) Node   { return newElement(`aside`, attrs, children) }
func Address(attrs []Attr, children ...Node) Node { return newElement(`address`, attrs, children) }
func H1(attrs []Attr, children ...Node) Node      { return newElement(`h1`, attrs, children) }
func H2(attrs []Attr, children ...Node) Node      { return newElement(`h2`, attrs, children) }
func H3(attrs []Attr, children ...Node) Node      { return newElement(`h3`, attrs, children) }
func H4(attrs []Attr, children ...Node) Node      { return newElement(`h4`, attrs, children) }
func H5(attrs []Attr, children ...Node) Node      { return newElement(`h5`, attrs, children) }
func H6(attrs []Attr, children ...Node) Node      { return newElement(`h6`, attrs, children) }
func Hgroup(attrs []Attr, children ...Node) Node  { return newElement(`hgroup`, attrs, children) }

// Grouping content.

func Div(attrs []Attr, children ...Node) Node        { return newElement(`div`, attrs, children) }
func P(attrs []Attr, children ...Node) Node          { return newElement(`p`, attrs, children) }
func Pre(attrs []Attr, children ...Node) Node        { return newElement(`pre`, attrs, children) }
func Blockquote(attrs []Attr, children ...Node) Node { return newElement(`blockquote`, attrs, children) }
func Ol(attrs []Attr, children ...Node) Node         { return newElement(`ol`, attrs, children) }
func Ul(attrs []Attr, children ...Node) Node         { return newElement(`ul`, attrs, children) }
func Menu(attrs []Attr, children ...Node) Node       { return newElement(`menu`, attrs, children) }
func Li(attrs []Attr, children ...Node) Node         { return newElement(`li`, attrs, children) }
func Dl(attrs []Attr, children ...Node) Node         { return newElement(`dl`, attrs, children) }
func Dt(attrs []Attr, children ...Node) Node         { return newElement(`dt`, attrs, children) }
func Dd(attrs []Attr, children ...Node) Node         { return newElement(`dd`, attrs, children) }
func Figure(attrs []Attr, children ...Node) Node     { return newElement(`figure`, attrs, children) }
func Figcaption(attrs []Attr, children ...Node) Node { return newElement(`figcaption`, attrs, children) }

// Text level semantics.

func A(attrs []Attr, children ...Node) Node      { return newElement(`a`, attrs, children) }
func Em(attrs []Attr, children ...Node) Node     { return newElement(`em`, attrs, children) }
func Strong(attrs []Attr, children ...Node) Node { return newElement(`strong`, attrs, children) }
func Small(attrs []Attr, children ...Node) Node  { return newElement(`small`, attrs, children) }
func S(attrs []Attr, children ...Node) Node      { return newElement(`s`, attrs, children) }
func Cite(attrs []Attr, children ...Node) Node   { return newElement(`cite`, attrs, children) }
func Q(attrs []Attr, children ...Node) Node      { return newElement(`q`, attrs, children) }
func Dfn(attrs []Attr, children ...Node) Node    { return newElement(`dfn`, attrs, children) }
func Abbr(attrs []Attr, children ...Node) Node   { return newElement(`abbr`, attrs, children) }
func Ruby(attrs []Attr, children ...Node) Node   { return newElement(`ruby`, attrs, children) }
func Rt(attrs []Attr, children ...Node) Node     { return newElement(`rt`, attrs, children) }
func Rp(attrs []Attr, children ...Node) Node     { return newElement(`rp`, attrs, children) }
func Time(attrs []Attr, children ...Node) Node   { return newElement(`time`, attrs, children) }
func Code(attrs []Attr, children ...Node) Node   { return newElement(`code`, attrs, children) }
func Var(attrs []Attr, children ...Node) Node    { return newElement(`var`, attrs, children) }
func Samp(attrs []Attr, children ...Node) Node   { return newElement(`samp`, attrs, children) }
func Kbd(attrs []Attr, children ...Node) Node    { return newElement(`kbd`, attrs, children) }
func Sub(attrs []Attr, children ...Node) Node    { return newElement(`sub`, attrs, children) }
func Sup(attrs []Attr, children ...Node) Node    { return newElement(`sup`, attrs, children) }
func I(attrs []Attr, children ...Node) Node      { return newElement(`i`, attrs, children) }
func B(attrs []Attr, children ...Node) Node      { return newElement(`b`, attrs, children) }
func U(attrs []Attr, children ...Node) Node      { return newElement(`u`, attrs, children) }
func Mark(attrs []Attr, children ...Node) Node   { return newElement(`mark`, attrs, children) }
func Bdi(attrs []Attr, children ...Node) Node    { return newElement(`bdi`, attrs, children) }
func Bdo(attrs []Attr, children ...Node) Node    { return newElement(`bdo`, attrs, children) }
func Span(attrs []Attr, children ...Node) Node   { return newElement(`span`, attrs, children) }
func Ins(attrs []Attr, children ...Node) Node    { return newElement(`ins`, attrs, children) }
func Del(attrs []Attr, children ...Node) Node    { return newElement(`del`, attrs, children) }

// DataEl constructs a <data> element.  The plain Data name belongs to the data-* attribute
// constructor, which is used far more often.
func DataEl(attrs []Attr, children ...Node) Node { return newElement(`data`, attrs, children) }

// Embedded content.

func Picture(attrs []Attr, children ...Node) Node { return newElement(`picture`, attrs, children) }
func Iframe(attrs []Attr, children ...Node) Node  { return newElement(`iframe`, attrs, children) }
func Object(attrs []Attr, children ...Node) Node  { return newElement(`object`, attrs, children) }
func Video(attrs []Attr, children ...Node) Node   { return newElement(`video`, attrs, children) }
func Audio(attrs []Attr, children ...Node) Node   { return newElement(`audio`, attrs, children) }
func Map(attrs []Attr, children ...Node) Node     { return newElement(`map`, attrs, children) }
func Canvas(attrs []Attr, children ...Node) Node  { return newElement(`canvas`, attrs, children) }
func Svg(attrs []Attr, children ...Node) Node     { return newElement(`svg`, attrs, children) }
func Math(attrs []Attr, children ...Node) Node    { return newElement(`math`, attrs, children) }

// Forms.

func Form(attrs []Attr, children ...Node) Node     { return newElement(`form`, attrs, children) }
func Label(attrs []Attr, children ...Node) Node    { return newElement(`label`, attrs, children) }
func Button(attrs []Attr, children ...Node) Node   { return newElement(`button`, attrs, children) }
func Select(attrs []Attr, children ...Node) Node   { return newElement(`select`, attrs, children) }
func Datalist(attrs []Attr, children ...Node) Node { return newElement(`datalist`, attrs, children) }
func Optgroup(attrs []Attr, children ...Node) Node { return newElement(`optgroup`, attrs, children) }
func Option(attrs []Attr, children ...Node) Node   { return newElement(`option`, attrs, children) }
func Textarea(attrs []Attr, children ...Node) Node { return newElement(`textarea`, attrs, children) }
func Output(attrs []Attr, children ...Node) Node   { return newElement(`output`, attrs, children) }
func Progress(attrs []Attr, children ...Node) Node { return newElement(`progress`, attrs, children) }
func Meter(attrs []Attr, children ...Node) Node    { return newElement(`meter`, attrs, children) }
func Fieldset(attrs []Attr, children ...Node) Node { return newElement(`fieldset`, attrs, children) }
func Legend(attrs []Attr, children ...Node) Node   { return newElement(`legend`, attrs, children) }

// Tables.

func Table(attrs []Attr, children ...Node) Node    { return newElement(`table`, attrs, children) }
func Caption(attrs []Attr, children ...Node) Node  { return newElement(`caption`, attrs, children) }
func Colgroup(attrs []Attr, children ...Node) Node { return newElement(`colgroup`, attrs, children) }
func Thead(attrs []Attr, children ...Node) Node    { return newElement(`thead`, attrs, children) }
func Tbody(attrs []Attr, children ...Node) Node    { return newElement(`tbody`, attrs, children) }
func Tfoot(attrs []Attr, children ...Node) Node    { return newElement(`tfoot`, attrs, children) }
func Tr(attrs []Attr, children ...Node) Node       { return newElement(`tr`, attrs, children) }
func Td(attrs []Attr, children ...Node) Node       { return newElement(`td`, attrs, children) }
func Th(attrs []Attr, children ...Node) Node       { return newElement(`th`, attrs, children) }

// Interactive and scripting adjacent.

func Details(attrs []Attr, children ...Node) Node  { return newElement(`details`, attrs, children) }
func Summary(attrs []Attr, children ...Node) Node  { return newElement(`summary`, attrs, children) }
func Dialog(attrs []Attr, children ...Node) Node   { return newElement(`dialog`, attrs, children) }
func Noscript(attrs []Attr, children ...Node) Node { return newElement(`noscript`, attrs, children) }
func Template(attrs []Attr, children ...Node) Node { return newElement(`template`, attrs, children) }
func Slot(attrs []Attr, children ...Node) Node     { return newElement(`slot`, attrs, children) }

// Void elements.  These have no closing tag and cannot have children, which is why their
// constructors have no children parameter at all.

func Area(attrs ...Attr) Node   { return newVoid(`area`, attrs) }
func Base(attrs ...Attr) Node   { return newVoid(`base`, attrs) }
func Br(attrs ...Attr) Node     { return newVoid(`br`, attrs) }
func Col(attrs ...Attr) Node    { return newVoid(`col`, attrs) }
func Embed(attrs ...Attr) Node  { return newVoid(`embed`, attrs) }
func Hr(attrs ...Attr) Node     { return newVoid(`hr`, attrs) }
func Img(attrs ...Attr) Node    { return newVoid(`img`, attrs) }
func Input(attrs ...Attr) Node  { return newVoid(`input`, attrs) }
func Link(attrs ...Attr) Node   { return newVoid(`link`, attrs) }
func Meta(attrs ...Attr) Node   { return newVoid(`meta`, attrs) }
func Param(attrs ...Attr) Node  { return newVoid(`param`, attrs) }
func Source(attrs ...Attr) Node { return newVoid(`source`, attrs) }
func Track(attrs ...Attr) Node  { return newVoid(`track`, attrs) }
func Wbr(attrs ...Attr) Node    { return newVoid(`wbr`, attrs) }
