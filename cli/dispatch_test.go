package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/roadmap/cli"
)

// DispatchSuite drives the line protocol end to end, asserting on stdout
// and the "ERROR n" lines written to the error channel.
type DispatchSuite struct {
	suite.Suite
	d      *cli.Dispatcher
	out    bytes.Buffer
	errOut bytes.Buffer
}

func (s *DispatchSuite) SetupTest() {
	s.d = cli.NewDispatcher()
	s.out.Reset()
	s.errOut.Reset()
}

func (s *DispatchSuite) run(script string) {
	err := s.d.Run(strings.NewReader(script), &s.out, &s.errOut)
	require.NoError(s.T(), err)
}

func (s *DispatchSuite) TestScenario1_NewRouteAndDescribe() {
	s.run(strings.Join([]string{
		"addRoad;A;B;10;2000",
		"addRoad;B;C;10;2000",
		"newRoute;1;A;C",
		"getRouteDescription;1",
	}, "\n"))

	require.Empty(s.T(), s.errOut.String())
	require.Equal(s.T(), "1;A;10;2000;B;10;2000;C\n", s.out.String())
}

func (s *DispatchSuite) TestScenario2_AmbiguousDiamond() {
	s.run(strings.Join([]string{
		"addRoad;A;B;5;2000",
		"addRoad;A;C;5;2000",
		"addRoad;B;D;5;2000",
		"addRoad;C;D;5;2000",
		"newRoute;1;A;D",
		"getRouteDescription;1",
	}, "\n"))

	require.Equal(s.T(), "ERROR 5\n", s.errOut.String())
	require.Empty(s.T(), s.out.String())
}

func (s *DispatchSuite) TestScenario3_RepairBreaksTie() {
	s.run(strings.Join([]string{
		"addRoad;A;B;5;2000",
		"addRoad;A;C;5;2000",
		"addRoad;B;D;5;2000",
		"addRoad;C;D;5;2000",
		"repairRoad;A;B;2010",
		"repairRoad;B;D;2010",
		"newRoute;1;A;D",
		"getRouteDescription;1",
	}, "\n"))

	require.Empty(s.T(), s.errOut.String())
	require.Equal(s.T(), "1;A;5;2010;B;5;2010;D\n", s.out.String())
}

func (s *DispatchSuite) TestScenario4_RemoveRoadRepairsRoute() {
	s.run(strings.Join([]string{
		"addRoad;A;B;1;2000",
		"addRoad;B;C;1;2000",
		"addRoad;A;D;5;2000",
		"addRoad;D;B;5;2000",
		"newRoute;1;A;C",
		"removeRoad;A;B",
		"getRouteDescription;1",
	}, "\n"))

	require.Empty(s.T(), s.errOut.String())
	require.Equal(s.T(), "1;A;5;2000;D;5;2000;B;1;2000;C\n", s.out.String())
}

func (s *DispatchSuite) TestScenario5_RemoveRoadFailsWithoutBypass() {
	s.run(strings.Join([]string{
		"addRoad;A;B;1;2000",
		"addRoad;B;C;1;2000",
		"newRoute;1;A;C",
		"removeRoad;A;B",
		"getRouteDescription;1",
	}, "\n"))

	require.Equal(s.T(), "ERROR 4\n", s.errOut.String())
	require.Equal(s.T(), "1;A;1;2000;B;1;2000;C\n", s.out.String())
}

func (s *DispatchSuite) TestScenario6_ExtendToOwnEndpointRejected() {
	s.run(strings.Join([]string{
		"addRoad;A;B;1;2000",
		"newRoute;1;A;B",
		"extendRoute;1;A",
	}, "\n"))

	require.Equal(s.T(), "ERROR 3\n", s.errOut.String())
}

func (s *DispatchSuite) TestRouteThroughImplicitCreateAndDescribe() {
	s.run(strings.Join([]string{
		"1;A;10;2000;B;10;2000;C",
		"getRouteDescription;1",
	}, "\n"))

	require.Empty(s.T(), s.errOut.String())
	require.Equal(s.T(), "1;A;10;2000;B;10;2000;C\n", s.out.String())
}

func (s *DispatchSuite) TestRouteThroughLengthMismatchRejected() {
	s.run(strings.Join([]string{
		"addRoad;A;B;10;2000",
		"2;A;99;2001;B",
	}, "\n"))

	require.Equal(s.T(), "ERROR 2\n", s.errOut.String())
}

func (s *DispatchSuite) TestCommentsAndBlankLinesCountTowardLineNumber() {
	s.run(strings.Join([]string{
		"# a network of two cities",
		"",
		"addRoad;A;B;10;2000",
		"newRoute;1;A;Z",
	}, "\n"))

	require.Equal(s.T(), "ERROR 4\n", s.errOut.String())
}

func (s *DispatchSuite) TestMalformedLineReportsError() {
	s.run("addRoad;A;B;10")
	require.Equal(s.T(), "ERROR 1\n", s.errOut.String())
}

func (s *DispatchSuite) TestRemoveRouteThenDescribeIsEmpty() {
	s.run(strings.Join([]string{
		"addRoad;A;B;1;2000",
		"newRoute;1;A;B",
		"removeRoute;1",
		"getRouteDescription;1",
	}, "\n"))

	require.Empty(s.T(), s.errOut.String())
	require.Empty(s.T(), s.out.String())
}

func TestDispatchSuite(t *testing.T) {
	suite.Run(t, new(DispatchSuite))
}
