package cli_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"encoding/json"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/rwx-research/dirtree/internal/cli"
	"github.com/rwx-research/dirtree/internal/command"
	"github.com/rwx-research/dirtree/internal/dirtree"
	"github.com/rwx-research/dirtree/internal/errors"
	"github.com/rwx-research/dirtree/internal/fs"
	"github.com/rwx-research/dirtree/internal/mocks"
)

const demoOutput = `CREATE fruits
CREATE vegetables
CREATE grains
CREATE fruits/apples
CREATE fruits/apples/fuji
LIST
fruits
  apples
    fuji
grains
vegetables
CREATE grains/squash
MOVE grains/squash vegetables
CREATE foods
MOVE grains foods
MOVE fruits foods
MOVE vegetables foods
LIST
foods
  fruits
    apples
      fuji
  grains
  vegetables
    squash
Cannot delete fruits/apples - fruits does not exist
DELETE foods/fruits/apples
LIST
foods
  fruits
  grains
  vegetables
    squash
`

var _ = Describe("CLI Service", func() {
	var (
		config  cli.Config
		service cli.Service
		mockFS  *mocks.FileSystem
		stdout  *strings.Builder
		stderr  *strings.Builder
	)

	BeforeEach(func() {
		mockFS = new(mocks.FileSystem)
		stdout = new(strings.Builder)
		stderr = new(strings.Builder)

		config = cli.Config{
			FileSystem: mockFS,
			Stdout:     stdout,
			Stderr:     stderr,
		}
	})

	JustBeforeEach(func() {
		var err error
		service, err = cli.NewService(config)
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("constructing a service", func() {
		It("requires a file system", func() {
			_, err := cli.NewService(cli.Config{Stdout: stdout, Stderr: stderr})
			Expect(err).To(MatchError("validation failed: missing file-system interface"))
		})

		It("requires writers", func() {
			_, err := cli.NewService(cli.Config{FileSystem: mockFS})
			Expect(err).To(MatchError("validation failed: missing stdout writer"))
		})
	})

	Describe("executing a command", func() {
		var tree *dirtree.Tree

		BeforeEach(func() {
			tree = dirtree.New()
		})

		It("confirms successful commands", func() {
			result := service.Execute(tree, command.Command{Kind: command.Create, Args: []string{"a/b"}})
			Expect(result).To(Equal(cli.Result{Command: "CREATE a/b", OK: true}))
			Expect(tree.Exists("a/b")).To(BeTrue())
		})

		It("reports the failure kind of a delete", func() {
			result := service.Execute(tree, command.Command{Kind: command.Delete, Args: []string{"a/b"}})
			Expect(result.OK).To(BeFalse())
			Expect(result.Kind).To(Equal("NotFound"))
			Expect(result.Message).To(Equal("Cannot delete a/b - a does not exist"))
		})

		It("reports the failure kind of a move", func() {
			Expect(tree.Create("a")).To(Succeed())

			result := service.Execute(tree, command.Command{Kind: command.Move, Args: []string{"a", "b"}})
			Expect(result.OK).To(BeFalse())
			Expect(result.Kind).To(Equal("InvalidPath"))
			Expect(result.Message).To(Equal("Cannot move a to b - b does not exist"))
			Expect(tree.Paths()).To(Equal([]string{"a"}))
		})

		It("reports malformed create paths", func() {
			result := service.Execute(tree, command.Command{Kind: command.Create, Args: []string{"a//b"}})
			Expect(result.Kind).To(Equal("InvalidPath"))
			Expect(result.Message).To(Equal("Cannot create a//b - path contains an empty segment"))
		})

		It("rejects commands with the wrong shape", func() {
			result := service.Execute(tree, command.Command{Kind: command.Move, Args: []string{"a"}})
			Expect(result.Kind).To(Equal(cli.KindInvalidCommand))
			Expect(result.Message).To(Equal("Invalid command: MOVE a"))
		})

		It("lists the tree", func() {
			Expect(tree.Create("b/c")).To(Succeed())
			Expect(tree.Create("a")).To(Succeed())

			result := service.Execute(tree, command.Command{Kind: command.List})
			Expect(result.OK).To(BeTrue())
			Expect(result.Entries).To(Equal([]dirtree.Entry{
				{Name: "a", Path: "a", Depth: 0},
				{Name: "b", Path: "b", Depth: 0},
				{Name: "c", Path: "b/c", Depth: 1},
			}))
		})
	})

	Describe("running commands", func() {
		var runConfig cli.RunConfig

		BeforeEach(func() {
			runConfig = cli.RunConfig{OutputFormat: cli.OutputText}
		})

		Context("with the demo", func() {
			BeforeEach(func() {
				runConfig.Demo = true
			})

			It("prints the expected transcript", func() {
				result, err := service.Run(runConfig)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Results).To(HaveLen(len(command.Demo)))
				Expect(result.Failures).To(Equal(1))
				Expect(stdout.String()).To(Equal(demoOutput))
			})

			It("fails in strict mode but still prints everything", func() {
				runConfig.Strict = true

				result, err := service.Run(runConfig)
				Expect(errors.Is(err, cli.ErrCommandsFailed)).To(BeTrue())
				Expect(err).To(MatchError("1 of 16: one or more commands failed"))
				Expect(result.Failures).To(Equal(1))
				Expect(stdout.String()).To(Equal(demoOutput))
			})

			It("colors diagnostics when asked to", func() {
				runConfig.Color = true

				_, err := service.Run(runConfig)
				Expect(err).NotTo(HaveOccurred())
				Expect(stdout.String()).To(ContainSubstring("\x1b[31mCannot delete fruits/apples - fruits does not exist"))
				Expect(stdout.String()).To(HavePrefix("CREATE fruits\n"))
			})

			It("writes JSON", func() {
				runConfig.OutputFormat = cli.OutputJSON

				_, err := service.Run(runConfig)
				Expect(err).NotTo(HaveOccurred())

				var decoded []cli.Result
				Expect(json.Unmarshal([]byte(stdout.String()), &decoded)).To(Succeed())
				Expect(decoded).To(HaveLen(len(command.Demo)))
				Expect(decoded[13]).To(Equal(cli.Result{
					Command: "DELETE fruits/apples",
					Kind:    "NotFound",
					Message: "Cannot delete fruits/apples - fruits does not exist",
				}))
				Expect(decoded[5].Entries).To(HaveLen(5))
			})

			It("writes YAML", func() {
				runConfig.OutputFormat = cli.OutputYAML

				_, err := service.Run(runConfig)
				Expect(err).NotTo(HaveOccurred())

				var decoded []cli.Result
				Expect(yaml.Unmarshal([]byte(stdout.String()), &decoded)).To(Succeed())
				Expect(decoded).To(HaveLen(len(command.Demo)))
				Expect(decoded[0]).To(Equal(cli.Result{Command: "CREATE fruits", OK: true}))
				Expect(decoded[15].Entries[0]).To(Equal(dirtree.Entry{Name: "foods", Path: "foods", Depth: 0}))
			})
		})

		Context("with inline commands", func() {
			It("runs them in order and keeps going after failures", func() {
				runConfig.Commands = []string{"CREATE a", "FROB", "DELETE b", "LIST"}

				result, err := service.Run(runConfig)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Failures).To(Equal(2))
				Expect(stdout.String()).To(Equal(
					"CREATE a\nInvalid command: FROB\nCannot delete b - b does not exist\nLIST\na\n",
				))
			})

			It("prints only the header when listing an empty tree", func() {
				runConfig.Commands = []string{"LIST"}

				_, err := service.Run(runConfig)
				Expect(err).NotTo(HaveOccurred())
				Expect(stdout.String()).To(Equal("LIST\n"))
			})
		})

		Context("with script files", func() {
			BeforeEach(func() {
				mockFS = mocks.Files(map[string]string{
					"setup.txt":  "# groceries\nCREATE fruits/apples\nCREATE foods\n",
					"moves.yml":  "version: 1\ncommands:\n  - MOVE fruits foods\n  - LIST\n",
					"future.yml": "version: 2\ncommands: []\n",
				})
				config.FileSystem = mockFS
			})

			It("runs every file against the same tree", func() {
				runConfig.Files = []string{"setup.txt", "moves.yml"}

				_, err := service.Run(runConfig)
				Expect(err).NotTo(HaveOccurred())
				Expect(stdout.String()).To(Equal(
					"CREATE fruits/apples\nCREATE foods\nMOVE fruits foods\nLIST\nfoods\n  fruits\n    apples\n",
				))
			})

			It("errors when a file does not exist", func() {
				runConfig.Files = []string{"missing.txt"}

				_, err := service.Run(runConfig)
				Expect(err).To(MatchError(`You specified "missing.txt", but "missing.txt" could not be found`))
				Expect(stdout.String()).To(BeEmpty())
			})

			It("errors when a script declares an unsupported version", func() {
				runConfig.Files = []string{"setup.txt", "future.yml"}

				_, err := service.Run(runConfig)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("script version 2.0.0 is not supported"))
				Expect(stdout.String()).To(BeEmpty())
			})

			It("closes the files it opens", func() {
				opened := make([]*mocks.File, 0)
				mockFS.MockOpen = func(name string) (fs.File, error) {
					file := mocks.NewFile("LIST\n")
					opened = append(opened, file)
					return file, nil
				}
				runConfig.Files = []string{"setup.txt"}

				_, err := service.Run(runConfig)
				Expect(err).NotTo(HaveOccurred())
				Expect(opened).To(HaveLen(1))
				Expect(opened[0].Closed).To(BeTrue())
			})
		})

		DescribeTable("validates the configuration",
			func(cfg cli.RunConfig, message string) {
				_, err := service.Run(cfg)
				Expect(err).To(MatchError("validation failed: " + message))
			},
			Entry("no source", cli.RunConfig{OutputFormat: cli.OutputText},
				"no commands to run, provide script files, inline commands, or the demo"),
			Entry("two sources", cli.RunConfig{OutputFormat: cli.OutputText, Demo: true, Commands: []string{"LIST"}},
				"script files, inline commands, and the demo cannot be combined"),
			Entry("unknown output", cli.RunConfig{OutputFormat: "xml", Demo: true},
				`unknown output format "xml", expected one of: text, json, yaml`),
		)
	})

	Describe("running a shell", func() {
		It("applies each line to the same tree until the input ends", func() {
			reader := &mocks.LineReader{Lines: []string{
				"CREATE a/b",
				"",
				"# comment",
				"MOVE a/b c",
				"CREATE c",
				"MOVE a/b c",
				"list",
				"LIST",
			}}

			err := service.Shell(cli.ShellConfig{Input: reader})
			Expect(err).NotTo(HaveOccurred())
			Expect(reader.Reads).To(Equal(len(reader.Lines)))
			Expect(stdout.String()).To(Equal(
				"CREATE a/b\n" +
					"Cannot move a/b to c - c does not exist\n" +
					"CREATE c\n" +
					"MOVE a/b c\n" +
					"Invalid command: list\n" +
					"LIST\n" +
					"a\n" +
					"c\n" +
					"  b\n",
			))
		})

		It("writes the banner to stderr", func() {
			reader := &mocks.LineReader{Lines: []string{"LIST"}}

			Expect(service.Shell(cli.ShellConfig{Input: reader, Banner: "welcome"})).To(Succeed())
			Expect(stderr.String()).To(Equal("welcome\n"))
			Expect(stdout.String()).To(Equal("LIST\n"))
		})

		It("stops at exit", func() {
			reader := &mocks.LineReader{Lines: []string{"CREATE a", "exit", "CREATE b"}}

			Expect(service.Shell(cli.ShellConfig{Input: reader})).To(Succeed())
			Expect(reader.Reads).To(Equal(2))
			Expect(stdout.String()).To(Equal("CREATE a\n"))
		})

		It("surfaces read errors", func() {
			reader := &mocks.LineReader{Err: errors.New("terminal went away")}

			err := service.Shell(cli.ShellConfig{Input: reader})
			Expect(err).To(MatchError("unable to read command: terminal went away"))
		})

		It("requires an input", func() {
			Expect(service.Shell(cli.ShellConfig{})).To(MatchError("validation failed: missing line reader"))
		})
	})

	Describe("reading lines from a stream", func() {
		It("returns each line and then EOF", func() {
			reader := cli.NewScannerReader(strings.NewReader("CREATE a\nLIST\n"))

			line, err := reader.ReadLine()
			Expect(err).NotTo(HaveOccurred())
			Expect(line).To(Equal("CREATE a"))

			line, err = reader.ReadLine()
			Expect(err).NotTo(HaveOccurred())
			Expect(line).To(Equal("LIST"))

			_, err = reader.ReadLine()
			Expect(err).To(MatchError("EOF"))
		})
	})
})
