package trinary

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
)

type TristateTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *TristateTestSuite) TestTristateLogicalOperators() {
	s.Equal(True, True.And(True))
	s.Equal(Conflict, Conflict.And(True))
	s.Equal(False, Conflict.And(False))
	s.Equal(Conflict, Conflict.And(Conflict))
	s.Equal(Conflict, True.And(Conflict))
	s.Equal(False, False.And(Conflict))

	s.Equal(True, True.Or(True))
	s.Equal(True, Conflict.Or(True))
	s.Equal(Conflict, Conflict.Or(False))
	s.Equal(Conflict, Conflict.Or(Conflict))
	s.Equal(True, True.Or(Conflict))
	s.Equal(Conflict, False.Or(Conflict))

	s.Equal(False, True.Not())
	s.Equal(True, False.Not())
	s.Equal(Conflict, Conflict.Not())
}

func (s *TristateTestSuite) TestToBool() {
	v, err := True.ToBool()
	s.Require().NoError(err)
	s.True(v)

	v, err = False.ToBool()
	s.Require().NoError(err)
	s.False(v)

	_, err = Conflict.ToBool()
	s.Require().ErrorIs(err, ErrAmbiguousValue)
}

func (s *TristateTestSuite) TestString() {
	s.Equal("True", True.String())
	s.Equal("False", False.String())
	s.Equal("Unknown", Conflict.String())
	s.Equal("Unknown", Unknown.String())
}

func (s *TristateTestSuite) SetupSuite() {
	s.ctx = context.Background()

	// set slog to discard logs so tests don't spam output
	slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func (s *TristateTestSuite) BeforeTest(suiteName, testName string) {
	slog.InfoContext(s.ctx, "BeforeTest start", slog.String("TestSuite", suiteName), slog.String("TestName", testName))
}

func (s *TristateTestSuite) AfterTest(suiteName, testName string) {
	slog.InfoContext(s.ctx, "AfterTest end", slog.String("TestSuite", suiteName), slog.String("TestName", testName))
}

func TestTristateTestSuite(t *testing.T) {
	suite.Run(t, new(TristateTestSuite))
}
