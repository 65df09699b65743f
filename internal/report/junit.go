package report

import (
	"encoding/xml"
	"io"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// JUnit XML schema types, one suite per report section.

// JUnitTestSuites is the top-level container.
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Name       string           `xml:"name,attr"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite maps to one report section.
type JUnitTestSuite struct {
	XMLName   xml.Name        `xml:"testsuite"`
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Timestamp string          `xml:"timestamp,attr"`
	TestCases []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase maps to one check line.
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	SystemOut string        `xml:"system-out,omitempty"`
}

// JUnitFailure represents a recorded error.
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
}

// ConvertToJUnit maps a report onto JUnit suites. Warnings are attached as
// system-out so CI shows them without failing the build. Errors that have
// no display line land in a trailing "General" suite.
func ConvertToJUnit(r *Report) *JUnitTestSuites {
	title := cases.Title(language.English)
	stamp := r.Timestamp.Format(time.RFC3339)

	out := &JUnitTestSuites{Name: r.Title}
	lined := make(map[string]int)

	for _, section := range r.Sections() {
		suite := JUnitTestSuite{
			Name:      title.String(section.Title),
			Timestamp: stamp,
		}
		for _, line := range r.LinesFor(section) {
			tc := JUnitTestCase{Name: line.Item, Classname: section.Key}
			switch line.Severity {
			case SeverityError:
				tc.Failure = &JUnitFailure{Message: line.Detail, Type: SeverityError.String()}
				suite.Failures++
				lined[line.Detail]++
			case SeverityWarning:
				tc.SystemOut = line.Detail
			}
			suite.TestCases = append(suite.TestCases, tc)
		}
		suite.Tests = len(suite.TestCases)
		out.TestSuites = append(out.TestSuites, suite)
	}

	general := JUnitTestSuite{Name: "General", Timestamp: stamp}
	for _, msg := range r.Errors {
		if lined[msg] > 0 {
			lined[msg]--
			continue
		}
		general.TestCases = append(general.TestCases, JUnitTestCase{
			Name:      msg,
			Classname: "general",
			Failure:   &JUnitFailure{Message: msg, Type: SeverityError.String()},
		})
		general.Failures++
	}
	if len(general.TestCases) > 0 {
		general.Tests = len(general.TestCases)
		out.TestSuites = append(out.TestSuites, general)
	}

	for _, s := range out.TestSuites {
		out.Tests += s.Tests
		out.Failures += s.Failures
	}
	return out
}

// WriteJUnit renders r as JUnit XML.
func WriteJUnit(w io.Writer, r *Report) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(ConvertToJUnit(r)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
