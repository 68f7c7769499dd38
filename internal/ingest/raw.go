package ingest

// Document is the top-level raw export.
type Document struct {
	Term     string       `json:"term,omitempty" yaml:"term,omitempty"`
	Sections []RawSection `json:"sections" yaml:"sections"`
}

// RawSection is one section as exported by the registrar.
type RawSection struct {
	ID                  string       `json:"id" yaml:"id"`
	Subject             string       `json:"subject" yaml:"subject"`
	CourseNumber        string       `json:"courseNumber" yaml:"courseNumber"`
	SequenceNumber      string       `json:"sequenceNumber" yaml:"sequenceNumber"`
	Title               string       `json:"title" yaml:"title"`
	CrossList           string       `json:"crossList,omitempty" yaml:"crossList,omitempty"`
	Enrollment          int          `json:"enrollment" yaml:"enrollment"`
	MaximumEnrollment   int          `json:"maximumEnrollment" yaml:"maximumEnrollment"`
	InstructionalMethod string       `json:"instructionalMethod,omitempty" yaml:"instructionalMethod,omitempty"`
	Faculty             []RawFaculty `json:"faculty,omitempty" yaml:"faculty,omitempty"`
	Meetings            []RawMeeting `json:"meetings,omitempty" yaml:"meetings,omitempty"`
}

// RawFaculty is one instructor assignment.
type RawFaculty struct {
	DisplayName  string `json:"displayName" yaml:"displayName"`
	EmailAddress string `json:"emailAddress" yaml:"emailAddress"`
	Primary      bool   `json:"primary,omitempty" yaml:"primary,omitempty"`
}

// RawMeeting is one meeting pattern with per-day flags.
type RawMeeting struct {
	BeginTime   string `json:"beginTime" yaml:"beginTime"`
	EndTime     string `json:"endTime" yaml:"endTime"`
	Monday      bool   `json:"monday,omitempty" yaml:"monday,omitempty"`
	Tuesday     bool   `json:"tuesday,omitempty" yaml:"tuesday,omitempty"`
	Wednesday   bool   `json:"wednesday,omitempty" yaml:"wednesday,omitempty"`
	Thursday    bool   `json:"thursday,omitempty" yaml:"thursday,omitempty"`
	Friday      bool   `json:"friday,omitempty" yaml:"friday,omitempty"`
	Saturday    bool   `json:"saturday,omitempty" yaml:"saturday,omitempty"`
	Sunday      bool   `json:"sunday,omitempty" yaml:"sunday,omitempty"`
	Building    string `json:"building,omitempty" yaml:"building,omitempty"`
	Room        string `json:"room,omitempty" yaml:"room,omitempty"`
	MeetingType string `json:"meetingType,omitempty" yaml:"meetingType,omitempty"`
}
