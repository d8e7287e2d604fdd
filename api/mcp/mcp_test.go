package mcp_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/atriumhq/atrium/api/mcp"
	"github.com/atriumhq/atrium/pkg/eventstream/nop"
	"github.com/atriumhq/atrium/pkg/reducer"
	"github.com/atriumhq/atrium/pkg/storage/inmemory"
)

func TestMCP(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "MCP Suite")
}

var _ = Describe("MCP Server", func() {
	var (
		server *mcp.Server
		driver *inmemory.Driver
		red    *reducer.Reducer
	)

	BeforeEach(func() {
		logger := zap.NewNop()
		driver = inmemory.NewDriver()
		red = reducer.New(driver, nop.NewPublisher(), logger)

		var err error
		server, err = mcp.NewServer(mcp.Config{
			Storer:  driver,
			Reducer: red,
			Logger:  logger,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("NewServer", func() {
		It("returns an error when storage driver is nil", func() {
			_, err := mcp.NewServer(mcp.Config{
				Reducer: red,
				Logger:  zap.NewNop(),
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("storage driver is required"))
		})

		It("returns an error when reducer is nil", func() {
			_, err := mcp.NewServer(mcp.Config{
				Storer: driver,
				Logger: zap.NewNop(),
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("reducer is required"))
		})

		It("returns an error when logger is nil", func() {
			_, err := mcp.NewServer(mcp.Config{
				Storer:  driver,
				Reducer: red,
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("logger is required"))
		})

		It("creates a server with valid config", func() {
			Expect(server).NotTo(BeNil())
		})

		It("returns an HTTP handler", func() {
			handler := server.Handler()
			Expect(handler).NotTo(BeNil())
		})

		It("creates an empty server in noop mode without collaborators", func() {
			s, err := mcp.NewServer(mcp.Config{Noop: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(s).NotTo(BeNil())
		})
	})
})
